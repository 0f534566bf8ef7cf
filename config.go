package listview

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the TOML-configurable knobs of a View. Pointer fields
// distinguish "absent" from zero so an unset anchor stays unset.
type Config struct {
	Scroll   scrollConfig   `toml:"scroll"`
	Selector selectorConfig `toml:"selector"`
}

type scrollConfig struct {
	OffsetFractionX *float64 `toml:"offset_fraction_x"`
	OffsetFractionY *float64 `toml:"offset_fraction_y"`
	Smooth          *bool    `toml:"smooth"`
}

type selectorConfig struct {
	Velocity   float64 `toml:"velocity"`   // px/s; 0 = instant
	Background string  `toml:"background"` // "#RRGGBB" or "#RRGGBBAA"
	Foreground string  `toml:"foreground"`
	Thickness  float64 `toml:"thickness"`
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses TOML bytes into a Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Options converts the config into View options. Color parse errors
// are returned rather than silently dropped.
func (c Config) Options() ([]ViewOption, error) {
	var opts []ViewOption

	if c.Scroll.OffsetFractionX != nil {
		opts = append(opts, WithScrollOffsetFractionX(float32(*c.Scroll.OffsetFractionX)))
	}
	if c.Scroll.OffsetFractionY != nil {
		opts = append(opts, WithScrollOffsetFractionY(float32(*c.Scroll.OffsetFractionY)))
	}
	if c.Scroll.Smooth != nil {
		opts = append(opts, WithSmoothScrolling(*c.Scroll.Smooth))
	}
	if c.Selector.Velocity > 0 {
		opts = append(opts, WithSelectorVelocity(float32(c.Selector.Velocity)))
	}

	if c.Selector.Background != "" || c.Selector.Foreground != "" {
		fill := ColorTransparent
		outline := ColorTransparent
		var err error
		if c.Selector.Background != "" {
			fill, err = ParseColor(c.Selector.Background)
			if err != nil {
				return nil, fmt.Errorf("selector background: %w", err)
			}
		}
		if c.Selector.Foreground != "" {
			outline, err = ParseColor(c.Selector.Foreground)
			if err != nil {
				return nil, fmt.Errorf("selector foreground: %w", err)
			}
		}
		thickness := float32(c.Selector.Thickness)
		if thickness <= 0 {
			thickness = 2
		}
		if fill != ColorTransparent {
			opts = append(opts, WithBackgroundSelector(NewRectPaintable(fill, ColorTransparent, 0)))
		}
		if outline != ColorTransparent {
			opts = append(opts, WithForegroundSelector(NewRectPaintable(ColorTransparent, outline, thickness)))
		}
	}

	return opts, nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into a packed color.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return RGBA(uint8(n>>16), uint8(n>>8), uint8(n), 255), nil
	}
	return RGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

package listview

import "testing"

func TestParseConfig(t *testing.T) {
	data := []byte(`
[scroll]
offset_fraction_y = 0.5
smooth = false

[selector]
velocity = 1500
background = "#326496"
foreground = "#5AA0DCFF"
thickness = 3
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.Scroll.OffsetFractionY == nil || *cfg.Scroll.OffsetFractionY != 0.5 {
		t.Errorf("Expected offset_fraction_y=0.5, got %v", cfg.Scroll.OffsetFractionY)
	}
	if cfg.Scroll.OffsetFractionX != nil {
		t.Error("Expected offset_fraction_x unset")
	}
	if cfg.Scroll.Smooth == nil || *cfg.Scroll.Smooth {
		t.Error("Expected smooth=false")
	}
	if cfg.Selector.Velocity != 1500 {
		t.Errorf("Expected velocity=1500, got %v", cfg.Selector.Velocity)
	}
}

func TestConfigOptionsApply(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
[scroll]
offset_fraction_y = 0.5
smooth = false

[selector]
velocity = 1500
background = "#326496"
`))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}

	v := New(newStubHost(), opts...)

	if _, set := v.ScrollOffsetFractionX(); set {
		t.Error("Expected X anchor unset")
	}
	fy, set := v.ScrollOffsetFractionY()
	if !set || fy != 0.5 {
		t.Errorf("Expected Y anchor 0.5, got %v set=%v", fy, set)
	}
	if v.SmoothScrolling() {
		t.Error("Expected smooth scrolling off")
	}
	if v.SelectorVelocity() != 1500 {
		t.Errorf("Expected velocity 1500, got %v", v.SelectorVelocity())
	}
	if v.BackgroundSelector() == nil {
		t.Error("Expected background selector installed")
	}
	if v.ForegroundSelector() != nil {
		t.Error("Expected no foreground selector")
	}
}

func TestParseConfigBadTOML(t *testing.T) {
	if _, err := ParseConfig([]byte("[scroll\n")); err == nil {
		t.Error("Expected error for malformed TOML")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF8040")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != RGBA(0xFF, 0x80, 0x40, 0xFF) {
		t.Errorf("Unexpected color %08X", c)
	}

	c, err = ParseColor("#FF804020")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != RGBA(0xFF, 0x80, 0x40, 0x20) {
		t.Errorf("Unexpected color %08X", c)
	}

	if _, err := ParseColor("red"); err == nil {
		t.Error("Expected error for named color")
	}
	if _, err := ParseColor("#12345"); err == nil {
		t.Error("Expected error for short hex")
	}
}

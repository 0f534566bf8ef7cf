package listview

// ListBoxStyle defines the visual appearance of a ListBox.
type ListBoxStyle struct {
	// Colors
	BackgroundColor   uint32
	TextColor         uint32
	SelectedTextColor uint32

	// Selector layer colors
	SelectorFillColor    uint32
	SelectorOutlineColor uint32
	SelectorThickness    float32

	// Sizing
	ItemHeight float32
	ItemGap    float32
	TextInset  float32 // Left inset of the label inside an item
	FontScale  float32
	Padding    Insets
}

// DefaultListBoxStyle returns the default style with sensible defaults.
func DefaultListBoxStyle() ListBoxStyle {
	return ListBoxStyle{
		BackgroundColor:   RGBA(20, 20, 20, 255),
		TextColor:         ColorWhite,
		SelectedTextColor: RGBA(255, 230, 120, 255),

		SelectorFillColor:    RGBA(50, 100, 150, 120),
		SelectorOutlineColor: RGBA(90, 160, 220, 255),
		SelectorThickness:    2,

		ItemHeight: 32,
		ItemGap:    4,
		TextInset:  12,
		FontScale:  2.0,
		Padding:    Insets{Left: 8, Top: 8, Right: 8, Bottom: 8},
	}
}

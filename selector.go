package listview

// selectorVisible decides whether the selector overlays should draw.
// The selector is a focus indicator for key-driven navigation, so it
// hides as soon as the user switches to pointer input or the container
// loses focus.
func selectorVisible(inTouchMode, hasFocus bool) bool {
	return !inTouchMode && hasFocus
}

// enforceSelectorVisibility pushes the current visibility policy to
// both overlay layers. Safe to call with either layer absent.
func (v *View) enforceSelectorVisibility() {
	visible := selectorVisible(v.inTouchMode, v.hasFocus)
	if v.background != nil {
		v.background.SetVisible(visible)
	}
	if v.foreground != nil {
		v.foreground.SetVisible(visible)
	}
}

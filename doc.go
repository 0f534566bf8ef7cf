// Package listview implements a focus-aware scrollable list view for
// directional-pad navigation, for applications driven by remote or
// keyboard input rather than touch.
//
// The package augments a scrolling item container with an animated
// "selector" highlight that follows the focused child, and with
// camera-style scroll positioning that keeps the focused child at a
// configurable anchor point inside the viewport. The core is the View
// type; ListBox is a ready-made vertical container wired to a View,
// and the backend subpackages render the resulting DrawList.
package listview

package listview

import "math"

// RequestChildRectOnScreen scrolls the container so that rect, given in
// child coordinates, lands inside the camera window. With no anchor
// fraction set on either axis the request is delegated to the host's
// default edge-alignment behavior. With an anchor set, the camera
// window on that axis collapses to a child-sized band centered at the
// anchor fraction of the viewport, so the focused item gravitates to a
// fixed screen position while scrolling.
//
// Returns true if any scrolling was performed. immediate forces a jump
// instead of a smooth scroll; smooth scrolling being disabled on the
// View forces it too.
func (v *View) RequestChildRectOnScreen(child Item, rect Rect, immediate bool) bool {
	if child == nil {
		return false
	}

	immediate = immediate || !v.smoothScrolling

	if !v.anchorXSet && !v.anchorYSet {
		return v.host.ScrollRectIntoView(child, rect, immediate)
	}

	size := v.host.Size()
	pad := v.host.Padding()

	parentLeft := pad.Left
	parentTop := pad.Top
	parentRight := size.X - pad.Right
	parentBottom := size.Y - pad.Bottom

	bounds := child.Bounds()
	childLeft := bounds.X + rect.X
	childTop := bounds.Y + rect.Y
	childRight := childLeft + rect.W
	childBottom := childTop + rect.H

	cameraLeft := parentLeft
	cameraRight := parentRight
	cameraTop := parentTop
	cameraBottom := parentBottom

	if v.anchorXSet {
		cameraCenterX := (parentRight + parentLeft) * v.anchorX
		childHalfWidth := ceilf(rect.W * 0.5)
		cameraLeft = cameraCenterX - childHalfWidth
		cameraRight = cameraCenterX + childHalfWidth
	}
	if v.anchorYSet {
		cameraCenterY := (parentBottom + parentTop) * v.anchorY
		childHalfHeight := ceilf(rect.H * 0.5)
		cameraTop = cameraCenterY - childHalfHeight
		cameraBottom = cameraCenterY + childHalfHeight
	}

	offScreenLeft := minf(0, childLeft-cameraLeft)
	offScreenTop := minf(0, childTop-cameraTop)
	offScreenRight := maxf(0, childRight-cameraRight)
	offScreenBottom := maxf(0, childBottom-cameraBottom)

	// Favor the start edge: bring the left edge on screen for LTR, the
	// right edge for RTL. When the start edge is already visible and we
	// scroll to bring in the far edge, limit the scroll so the start
	// edge cannot leave the padded viewport. Vertical always favors the
	// top edge.
	var dx float32
	if v.host.LayoutDirection() == LayoutRTL {
		if offScreenRight != 0 {
			dx = offScreenRight
		} else {
			dx = maxf(offScreenLeft, childRight-parentRight)
		}
	} else {
		if offScreenLeft != 0 {
			dx = offScreenLeft
		} else {
			dx = minf(childLeft-parentLeft, offScreenRight)
		}
	}

	var dy float32
	if offScreenTop != 0 {
		dy = offScreenTop
	} else {
		dy = minf(childTop-parentTop, offScreenBottom)
	}

	if dx == 0 && dy == 0 {
		return false
	}

	if immediate {
		v.host.ScrollBy(dx, dy)
	} else {
		v.host.SmoothScrollBy(dx, dy)
	}
	return true
}

func ceilf(x float32) float32 {
	return float32(math.Ceil(float64(x)))
}

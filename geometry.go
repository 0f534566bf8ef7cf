package listview

import (
	"math"
	"time"
)

// TravelDuration converts a selector displacement into an animation
// duration. velocity is in pixels per second; the duration scales
// linearly with the straight-line distance between the two positions.
// A non-positive velocity yields zero, which callers treat as an
// instant jump.
func TravelDuration(dx, dy, velocity float32) time.Duration {
	if velocity <= 0 {
		return 0
	}
	dist := math.Hypot(float64(dx), float64(dy))
	ms := math.Round(dist / float64(velocity) * 1000)
	return time.Duration(ms) * time.Millisecond
}

// lerpRect interpolates every component of the rectangle independently.
// t is expected to be in [0, 1]; t=0 yields from, t=1 yields to.
func lerpRect(from, to Rect, t float32) Rect {
	return Rect{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
		W: from.W + (to.W-from.W)*t,
		H: from.H + (to.H-from.H)*t,
	}
}

package listview

import "time"

type transitionState uint8

const (
	transitionIdle transitionState = iota
	transitionRunning
)

// selectorTransition tracks one in-flight move of the selector layers
// from the previously focused item to the newly focused one. Both
// layers animate in lockstep from source to dest with linear easing.
type selectorTransition struct {
	state    transitionState
	source   Rect
	dest     Rect
	duration time.Duration
	elapsed  time.Duration
	newItem  Item
}

// Animating reports whether a selector transition is in flight.
func (v *View) Animating() bool {
	return v.transition.state == transitionRunning
}

// animateSelectorChange starts moving the selector layers to newly.
// prev is the item losing focus, or nil on the first focus; its bounds
// are the transition source, a zero rect when there is no prev. A nil
// newly or a zero displacement is a no-op. An in-flight transition is
// cancelled first, which routes through the end handler so the
// interrupted target still receives its selection notification.
func (v *View) animateSelectorChange(newly, prev Item) {
	if newly == nil {
		return
	}

	var source Rect
	if prev != nil {
		source = prev.Bounds()
	}
	dest := newly.Bounds()
	if source == dest {
		return
	}

	if v.transition.state == transitionRunning {
		v.cancelTransition()
	}

	if prev != nil {
		prev.SetSelected(false)
	}

	v.transition = selectorTransition{
		state:   transitionRunning,
		source:  source,
		dest:    dest,
		newItem: newly,
	}

	srcC := source.Center()
	dstC := dest.Center()
	v.transition.duration = TravelDuration(dstC.X-srcC.X, dstC.Y-srcC.Y, v.velocity)

	if v.transition.duration <= 0 {
		v.applyTransitionBounds(1)
		v.finishTransition()
		return
	}

	v.applyTransitionBounds(0)
}

// Tick advances the selector animation by dt seconds. Call once per
// frame; a no-op when nothing is animating.
func (v *View) Tick(dt float32) {
	if v.transition.state != transitionRunning {
		return
	}

	v.transition.elapsed += time.Duration(float64(dt) * float64(time.Second))

	t := float32(1)
	if v.transition.duration > 0 {
		t = clampf(float32(v.transition.elapsed)/float32(v.transition.duration), 0, 1)
	}

	v.applyTransitionBounds(t)

	if t >= 1 {
		v.finishTransition()
	}
}

// applyTransitionBounds positions both layers at interpolation factor t
// and reports the swept regions as dirty.
func (v *View) applyTransitionBounds(t float32) {
	r := lerpRect(v.transition.source, v.transition.dest, t)
	v.moveLayer(v.background, r)
	v.moveLayer(v.foreground, r)
}

func (v *View) moveLayer(p Paintable, r Rect) {
	if p == nil {
		return
	}
	old := p.Bounds()
	if old == r {
		return
	}
	p.SetBounds(r)
	v.InvalidatePaintable(p)
	if !old.IsZero() {
		v.invalidateRect(old)
	}
}

// cancelTransition aborts the in-flight transition. Cancellation runs
// the end handler so the interrupted target is still selected before
// the next transition starts.
func (v *View) cancelTransition() {
	if v.transition.state != transitionRunning {
		return
	}
	v.finishTransition()
}

// finishTransition fires the end-of-transition effect exactly once:
// the target item becomes selected and the transition returns to idle.
func (v *View) finishTransition() {
	item := v.transition.newItem
	v.transition = selectorTransition{}
	if item != nil {
		item.SetSelected(true)
	}
}

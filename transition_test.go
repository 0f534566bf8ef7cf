package listview

import (
	"testing"
	"time"
)

// rectNear compares rectangles with a small tolerance for float
// accumulation in interpolated positions.
func rectNear(a, b Rect) bool {
	const eps = 0.01
	return absf32(a.X-b.X) < eps && absf32(a.Y-b.Y) < eps &&
		absf32(a.W-b.W) < eps && absf32(a.H-b.H) < eps
}

func TestAnimateSelectorChangeNilTarget(t *testing.T) {
	host := newStubHost()
	v := New(host)
	prev := &stubItem{bounds: Rect{X: 0, Y: 0, W: 50, H: 30}}

	v.animateSelectorChange(nil, prev)

	if v.Animating() {
		t.Error("Expected no transition for nil target")
	}
	if len(prev.events) != 0 {
		t.Errorf("Expected previous item untouched, got %v", prev.events)
	}
}

func TestAnimateSelectorChangeZeroDelta(t *testing.T) {
	host := newStubHost()
	bg := NewRectPaintable(ColorWhite, 0, 0)
	v := New(host, WithBackgroundSelector(bg), WithSelectorVelocity(100))

	// The layer sits elsewhere; the no-op check runs against the
	// previous item's rectangle, not the layer position.
	bg.SetBounds(Rect{X: 100, Y: 200, W: 50, H: 30})
	host.invalidated = nil

	item := &stubItem{bounds: Rect{X: 10, Y: 20, W: 50, H: 30}}
	prev := &stubItem{bounds: Rect{X: 10, Y: 20, W: 50, H: 30}}
	v.animateSelectorChange(item, prev)

	if v.Animating() {
		t.Error("Expected no transition when source equals dest")
	}
	if len(item.events) != 0 || len(prev.events) != 0 {
		t.Error("Expected no selection events when source equals dest")
	}
	if len(host.invalidated) != 0 {
		t.Error("Expected no invalidation when source equals dest")
	}
}

func TestTransitionStartAndEndEffects(t *testing.T) {
	host := newStubHost()
	bg := NewRectPaintable(ColorWhite, 0, 0)
	v := New(host, WithBackgroundSelector(bg), WithSelectorVelocity(1000))

	bg.SetBounds(Rect{X: 0, Y: 0, W: 50, H: 30})
	prev := &stubItem{bounds: Rect{X: 0, Y: 0, W: 50, H: 30}}
	next := &stubItem{bounds: Rect{X: 0, Y: 300, W: 50, H: 30}}

	v.animateSelectorChange(next, prev)

	// Start unselects the previous item immediately.
	if len(prev.events) != 1 || prev.events[0] != "deselect" {
		t.Errorf("Expected previous item deselected at start, got %v", prev.events)
	}
	// End has not fired yet.
	if len(next.events) != 0 {
		t.Errorf("Expected no selection before the transition ends, got %v", next.events)
	}
	if !v.Animating() {
		t.Fatal("Expected transition to be running")
	}

	// 300px at 1000px/s is 0.3s; run past the end.
	v.Tick(0.5)

	if bg.Bounds() != (Rect{X: 0, Y: 300, W: 50, H: 30}) {
		t.Errorf("Expected layer at destination, got %+v", bg.Bounds())
	}
	if len(next.events) != 1 || next.events[0] != "select" {
		t.Errorf("Expected new item selected at end, got %v", next.events)
	}
	if v.Animating() {
		t.Error("Expected transition finished")
	}
}

func TestTransitionIntermediatePosition(t *testing.T) {
	host := newStubHost()
	bg := NewRectPaintable(ColorWhite, 0, 0)
	v := New(host, WithBackgroundSelector(bg), WithSelectorVelocity(1000))

	prev := &stubItem{bounds: Rect{X: 0, Y: 0, W: 50, H: 30}}
	next := &stubItem{bounds: Rect{X: 0, Y: 300, W: 50, H: 30}}
	v.animateSelectorChange(next, prev)

	host.invalidated = nil
	v.Tick(0.15) // Halfway through the 0.3s transition

	want := Rect{X: 0, Y: 150, W: 50, H: 30}
	if !rectNear(bg.Bounds(), want) {
		t.Errorf("Expected layer halfway at %+v, got %+v", want, bg.Bounds())
	}
	if len(host.invalidated) == 0 {
		t.Error("Expected intermediate movement to invalidate")
	}
	if len(next.events) != 0 {
		t.Error("Expected no selection midway through the transition")
	}
}

func TestTransitionInstantWhenVelocityZero(t *testing.T) {
	host := newStubHost()
	bg := NewRectPaintable(ColorWhite, 0, 0)
	v := New(host, WithBackgroundSelector(bg))

	bg.SetBounds(Rect{X: 0, Y: 0, W: 50, H: 30})
	next := &stubItem{bounds: Rect{X: 0, Y: 300, W: 50, H: 30}}
	v.animateSelectorChange(next, nil)

	if v.Animating() {
		t.Error("Expected instant jump with zero velocity")
	}
	if bg.Bounds() != (Rect{X: 0, Y: 300, W: 50, H: 30}) {
		t.Errorf("Expected layer at destination immediately, got %+v", bg.Bounds())
	}
	if len(next.events) != 1 || next.events[0] != "select" {
		t.Errorf("Expected immediate selection, got %v", next.events)
	}
}

func TestTransitionCancellationRoutesThroughEnd(t *testing.T) {
	host := newStubHost()
	bg := NewRectPaintable(ColorWhite, 0, 0)
	v := New(host, WithBackgroundSelector(bg), WithSelectorVelocity(1000))

	var log []string
	zeroth := &stubItem{bounds: Rect{X: 0, Y: 0, W: 50, H: 30}}
	first := &stubItem{bounds: Rect{X: 0, Y: 300, W: 50, H: 30}, name: "first", log: &log}
	second := &stubItem{bounds: Rect{X: 0, Y: 600, W: 50, H: 30}, name: "second", log: &log}

	v.animateSelectorChange(first, zeroth)
	v.Tick(0.1) // Partway through the 0.3s transition, layer at y=100

	// Interrupt: the first transition's end effect must fire exactly
	// once, before the second transition deselects it.
	v.animateSelectorChange(second, first)

	want := []string{"first:select", "first:deselect"}
	if len(log) != len(want) {
		t.Fatalf("Expected events %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("Expected events %v, got %v", want, log)
		}
	}

	// The second transition starts from the first item's rectangle,
	// regardless of where the layer was when interrupted; the duration
	// covers the 300px between item centers.
	if v.transition.source != first.Bounds() {
		t.Errorf("Expected source %+v, got %+v", first.Bounds(), v.transition.source)
	}
	if v.transition.duration != 300*time.Millisecond {
		t.Errorf("Expected 300ms duration, got %v", v.transition.duration)
	}

	v.Tick(1)
	if log[len(log)-1] != "second:select" {
		t.Errorf("Expected second item selected at end, got %v", log)
	}
}

package listview

import (
	"testing"
	"time"
)

func TestTravelDuration(t *testing.T) {
	// 3-4-5 triangle: 500px at 1000px/s is half a second.
	if d := TravelDuration(300, 400, 1000); d != 500*time.Millisecond {
		t.Errorf("Expected 500ms, got %v", d)
	}

	// Direction must not matter.
	if TravelDuration(-300, -400, 1000) != TravelDuration(300, 400, 1000) {
		t.Error("Expected duration to be independent of direction")
	}

	// Halving the velocity doubles the duration.
	if d := TravelDuration(300, 400, 500); d != time.Second {
		t.Errorf("Expected 1s at half velocity, got %v", d)
	}
}

func TestTravelDurationZeroVelocity(t *testing.T) {
	if d := TravelDuration(100, 100, 0); d != 0 {
		t.Errorf("Expected 0 for zero velocity, got %v", d)
	}
	if d := TravelDuration(100, 100, -50); d != 0 {
		t.Errorf("Expected 0 for negative velocity, got %v", d)
	}
}

func TestTravelDurationRounds(t *testing.T) {
	// 1px at 3px/s is 333.33ms, which rounds down to 333ms.
	if d := TravelDuration(1, 0, 3); d != 333*time.Millisecond {
		t.Errorf("Expected 333ms, got %v", d)
	}
}

func TestLerpRect(t *testing.T) {
	from := Rect{X: 0, Y: 0, W: 10, H: 10}
	to := Rect{X: 100, Y: 50, W: 30, H: 20}

	if got := lerpRect(from, to, 0); got != from {
		t.Errorf("Expected from at t=0, got %+v", got)
	}
	if got := lerpRect(from, to, 1); got != to {
		t.Errorf("Expected to at t=1, got %+v", got)
	}

	mid := lerpRect(from, to, 0.5)
	want := Rect{X: 50, Y: 25, W: 20, H: 15}
	if mid != want {
		t.Errorf("Expected %+v at t=0.5, got %+v", want, mid)
	}
}

package listview

import "testing"

func TestCameraAnchoredScroll(t *testing.T) {
	host := newStubHost() // 1000x1000, no padding
	v := New(host, WithScrollOffsetFractionX(0.5), WithSmoothScrolling(false))

	// Camera window: center 500, child half width 25 -> [475, 525].
	// Child at [900, 950] overflows by 425.
	child := &stubItem{bounds: Rect{X: 900, Y: 0, W: 50, H: 50}}
	moved := v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, false)

	if !moved {
		t.Fatal("Expected scrolling to be performed")
	}
	if len(host.scrolls) != 1 || host.scrolls[0] != (Vec2{X: 425, Y: 0}) {
		t.Errorf("Expected immediate scroll by (425, 0), got %v", host.scrolls)
	}
	if len(host.smoothScrolls) != 0 {
		t.Error("Expected no smooth scroll with smooth scrolling off")
	}
}

func TestCameraSmoothScroll(t *testing.T) {
	host := newStubHost()
	v := New(host, WithScrollOffsetFractionX(0.5), WithSmoothScrolling(true))

	child := &stubItem{bounds: Rect{X: 900, Y: 0, W: 50, H: 50}}
	v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, false)

	if len(host.smoothScrolls) != 1 || host.smoothScrolls[0] != (Vec2{X: 425, Y: 0}) {
		t.Errorf("Expected smooth scroll by (425, 0), got %v", host.smoothScrolls)
	}
	if len(host.scrolls) != 0 {
		t.Error("Expected no immediate scroll with smooth scrolling on")
	}
}

func TestCameraImmediateFlag(t *testing.T) {
	host := newStubHost()
	v := New(host, WithScrollOffsetFractionX(0.5), WithSmoothScrolling(true))

	child := &stubItem{bounds: Rect{X: 900, Y: 0, W: 50, H: 50}}
	v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, true)

	if len(host.scrolls) != 1 {
		t.Errorf("Expected immediate=true to force ScrollBy, got %v smooth %v", host.scrolls, host.smoothScrolls)
	}
}

func TestCameraDelegatesWithoutAnchors(t *testing.T) {
	host := newStubHost()
	v := New(host)

	child := &stubItem{bounds: Rect{X: 900, Y: 0, W: 50, H: 50}}
	v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, false)

	if host.fallbackCalls != 1 {
		t.Errorf("Expected delegation to host default, got %d calls", host.fallbackCalls)
	}
	if len(host.scrolls) != 0 || len(host.smoothScrolls) != 0 {
		t.Error("Expected no direct scrolling when delegating")
	}
}

func TestCameraNoScrollWhenInWindow(t *testing.T) {
	host := newStubHost()
	v := New(host, WithScrollOffsetFractionX(0.5), WithScrollOffsetFractionY(0.5))

	// Child exactly in both camera windows: [475, 525] on each axis.
	child := &stubItem{bounds: Rect{X: 475, Y: 475, W: 50, H: 50}}
	moved := v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, false)

	if moved {
		t.Error("Expected no scrolling when the child sits in the camera window")
	}
	if len(host.scrolls) != 0 || len(host.smoothScrolls) != 0 {
		t.Error("Expected no scroll calls")
	}
}

func TestCameraVerticalFavorsTop(t *testing.T) {
	host := newStubHost()
	v := New(host, WithScrollOffsetFractionY(0.5))

	// Camera window [475, 525]. Child at [100, 150] is above the
	// window: offTop = -375, so scroll up by 375.
	child := &stubItem{bounds: Rect{X: 0, Y: 100, W: 50, H: 50}}
	v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, true)

	if len(host.scrolls) != 1 || host.scrolls[0] != (Vec2{X: 0, Y: -375}) {
		t.Errorf("Expected scroll by (0, -375), got %v", host.scrolls)
	}
}

func TestCameraRTLFavorsRightEdge(t *testing.T) {
	host := newStubHost()
	host.dir = LayoutRTL
	v := New(host, WithScrollOffsetFractionX(0.5))

	// Child overflowing on the right: both layouts agree.
	child := &stubItem{bounds: Rect{X: 900, Y: 0, W: 50, H: 50}}
	v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, true)
	if len(host.scrolls) != 1 || host.scrolls[0] != (Vec2{X: 425, Y: 0}) {
		t.Fatalf("Expected scroll by (425, 0), got %v", host.scrolls)
	}

	// Child overflowing on the left: LTR would use offScreenLeft, RTL
	// aligns the right edge instead: max(-375, 150-1000) = -375.
	host.scrolls = nil
	child = &stubItem{bounds: Rect{X: 100, Y: 0, W: 50, H: 50}}
	v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, true)
	if len(host.scrolls) != 1 || host.scrolls[0] != (Vec2{X: -375, Y: 0}) {
		t.Errorf("Expected scroll by (-375, 0), got %v", host.scrolls)
	}
}

func TestCameraOddChildSizeRoundsWindowUp(t *testing.T) {
	host := newStubHost()
	v := New(host, WithScrollOffsetFractionX(0.5))

	// 51px child: half width rounds up to 26, window [474, 526].
	// Child at [473, 524] pokes out on the left by 1.
	child := &stubItem{bounds: Rect{X: 473, Y: 0, W: 51, H: 50}}
	v.RequestChildRectOnScreen(child, Rect{W: 51, H: 50}, true)

	if len(host.scrolls) != 1 || host.scrolls[0] != (Vec2{X: -1, Y: 0}) {
		t.Errorf("Expected scroll by (-1, 0), got %v", host.scrolls)
	}
}

func TestCameraLimitsScrollToStartEdge(t *testing.T) {
	host := newStubHost()
	v := New(host, WithScrollOffsetFractionX(0))

	// Camera window [-25, 25]. Child at [50, 100] is 75 past the
	// window, but scrolling 75 would push its left edge off screen;
	// the scroll stops at 50 so the edge lands on the viewport edge.
	child := &stubItem{bounds: Rect{X: 50, Y: 0, W: 50, H: 50}}
	v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, true)

	if len(host.scrolls) != 1 || host.scrolls[0] != (Vec2{X: 50, Y: 0}) {
		t.Errorf("Expected scroll by (50, 0), got %v", host.scrolls)
	}
}

func TestCameraLimitsVerticalScrollToTopEdge(t *testing.T) {
	host := newStubHost()
	v := New(host, WithScrollOffsetFractionY(0))

	// Vertical mirror of the start edge limit: window [-25, 25],
	// child at [50, 100], scroll limited to 50.
	child := &stubItem{bounds: Rect{X: 0, Y: 50, W: 50, H: 50}}
	v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, true)

	if len(host.scrolls) != 1 || host.scrolls[0] != (Vec2{X: 0, Y: 50}) {
		t.Errorf("Expected scroll by (0, 50), got %v", host.scrolls)
	}
}

func TestCameraRTLLimitsScrollToRightEdge(t *testing.T) {
	host := newStubHost()
	host.dir = LayoutRTL
	v := New(host, WithScrollOffsetFractionX(1))

	// Camera window [975, 1025]. Child at [900, 950] is 75 short of
	// the window; the scroll stops at -50 so the right edge lands on
	// the viewport edge: max(-75, 950-1000) = -50.
	child := &stubItem{bounds: Rect{X: 900, Y: 0, W: 50, H: 50}}
	v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, true)

	if len(host.scrolls) != 1 || host.scrolls[0] != (Vec2{X: -50, Y: 0}) {
		t.Errorf("Expected scroll by (-50, 0), got %v", host.scrolls)
	}
}

func TestCameraRespectsPadding(t *testing.T) {
	host := newStubHost()
	host.pad = Insets{Left: 100, Right: 100}
	v := New(host, WithScrollOffsetFractionX(0.5))

	// Padded viewport [100, 900]: center 500, window [475, 525].
	child := &stubItem{bounds: Rect{X: 475, Y: 0, W: 50, H: 50}}
	moved := v.RequestChildRectOnScreen(child, Rect{W: 50, H: 50}, true)
	if moved {
		t.Errorf("Expected no scroll for centered child, got %v", host.scrolls)
	}
}

func TestCameraNilChild(t *testing.T) {
	host := newStubHost()
	v := New(host, WithScrollOffsetFractionX(0.5))
	if v.RequestChildRectOnScreen(nil, Rect{W: 50, H: 50}, false) {
		t.Error("Expected false for nil child")
	}
}

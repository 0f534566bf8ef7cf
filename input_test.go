package listview

import "testing"

func TestTouchModeWatcherPointerEntersTouchMode(t *testing.T) {
	w := NewTouchModeWatcher()
	if w.InTouchMode() {
		t.Fatal("Expected watcher to start out of touch mode")
	}

	input := NewInputState()
	input.SetMousePos(10, 10)
	w.Update(input)

	if !w.InTouchMode() {
		t.Error("Expected pointer movement to enter touch mode")
	}
}

func TestTouchModeWatcherKeyLeavesTouchMode(t *testing.T) {
	w := NewTouchModeWatcher()
	w.SetTouchMode(true)

	input := NewInputState()
	input.SetKey(KeyDown, true)
	w.Update(input)

	if w.InTouchMode() {
		t.Error("Expected key press to leave touch mode")
	}
}

func TestTouchModeWatcherKeyWinsOverPointer(t *testing.T) {
	w := NewTouchModeWatcher()
	w.SetTouchMode(true)

	// Both in one frame: key traffic wins, the user is navigating.
	input := NewInputState()
	input.SetMousePos(10, 10)
	input.SetKey(KeyDown, true)
	w.Update(input)

	if w.InTouchMode() {
		t.Error("Expected key activity to win over pointer activity")
	}
}

func TestTouchModeWatcherSubscribe(t *testing.T) {
	w := NewTouchModeWatcher()

	var got []bool
	cancel := w.Subscribe(func(m bool) { got = append(got, m) })

	w.SetTouchMode(true)
	w.SetTouchMode(true) // No change, no callback
	w.SetTouchMode(false)

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("Expected callbacks [true false], got %v", got)
	}

	cancel()
	w.SetTouchMode(true)
	if len(got) != 2 {
		t.Error("Expected no callback after cancel")
	}
}

func TestInputStateKeyRepeat(t *testing.T) {
	s := NewInputState()

	s.SetKey(KeyDown, true)
	if !s.KeyRepeated(KeyDown) {
		t.Error("Expected trigger on initial press")
	}

	// Held but within the repeat delay: no trigger.
	s.Reset()
	s.UpdateKeyRepeat(0.1)
	if s.KeyRepeated(KeyDown) {
		t.Error("Expected no trigger during repeat delay")
	}

	// Held past the delay: triggers periodically.
	fired := 0
	for i := 0; i < 60; i++ {
		s.UpdateKeyRepeat(1.0 / 60)
		if s.KeyRepeated(KeyDown) {
			fired++
		}
	}
	if fired == 0 {
		t.Error("Expected repeats after the delay")
	}
}

func TestInputStateReset(t *testing.T) {
	s := NewInputState()
	s.SetKey(KeyDown, true)
	s.SetMouseButton(MouseButtonLeft, true)
	s.SetMouseWheel(0, 3)
	s.SetMousePos(5, 5)

	s.Reset()

	if s.KeyPressed(KeyDown) {
		t.Error("Expected pressed flag cleared")
	}
	if !s.KeyDown(KeyDown) {
		t.Error("Expected held state preserved")
	}
	if s.MouseClicked(MouseButtonLeft) {
		t.Error("Expected clicked flag cleared")
	}
	if s.MouseWheelY != 0 {
		t.Error("Expected wheel cleared")
	}
	if s.MouseMoved() {
		t.Error("Expected moved flag cleared")
	}
}

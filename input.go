package listview

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key relevant to list navigation.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.05 // Repeat interval once repeating (seconds)
)

// InputState holds input state for the current frame.
// This is typically populated by the application from GLFW or similar.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	mouseMoved bool // Pointer moved this frame

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released

	// Key repeat tracking
	keyHoldTime [KeyCount]float32 // How long each key has been held
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyUp {
		s.keyUp[i] = false
	}
	s.mouseMoved = false
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	if x != s.MouseX || y != s.MouseY {
		s.mouseMoved = true
	}
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0
	}
}

// UpdateKeyRepeat updates key hold times for repeat detection.
// Call this once per frame with the frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// MouseMoved returns true if the pointer moved this frame.
func (s *InputState) MouseMoved() bool {
	return s.mouseMoved
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was released this frame.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated returns true if a key should trigger this frame:
// on the initial press, then after KeyRepeatDelay, then once every
// KeyRepeatInterval while held. Used for held D-pad navigation.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}

	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}

	holdTime := s.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}

	// Trigger when an interval boundary was crossed this frame.
	// Approximate the previous frame at ~60fps.
	timeSinceDelay := holdTime - KeyRepeatDelay
	repeatCount := int(timeSinceDelay / KeyRepeatInterval)
	prevRepeatCount := int((timeSinceDelay - 0.016) / KeyRepeatInterval)
	return repeatCount > prevRepeatCount
}

// AnyKeyActivity returns true if any key was pressed this frame.
func (s *InputState) AnyKeyActivity() bool {
	for key := Key(0); key < KeyCount; key++ {
		if s.keyPressed[key] {
			return true
		}
	}
	return false
}

// AnyPointerActivity returns true if the pointer moved, a button
// changed state, or the wheel scrolled this frame.
func (s *InputState) AnyPointerActivity() bool {
	if s.mouseMoved || s.MouseWheelX != 0 || s.MouseWheelY != 0 {
		return true
	}
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		if s.mouseClicked[b] || s.mouseUp[b] {
			return true
		}
	}
	return false
}

// TouchModeNotifier reports whether the user is currently interacting
// through a pointer (touch mode) or through keys. Subscribers are
// notified whenever the mode flips.
type TouchModeNotifier interface {
	// InTouchMode returns the current mode.
	InTouchMode() bool

	// Subscribe registers fn to be called on every mode change with
	// the new mode. The returned function cancels the subscription.
	Subscribe(fn func(inTouchMode bool)) (cancel func())
}

// TouchModeWatcher derives touch mode from frame input: pointer
// activity enters touch mode, key activity leaves it. It implements
// TouchModeNotifier.
type TouchModeWatcher struct {
	inTouchMode bool
	nextID      int
	subscribers map[int]func(bool)
}

// NewTouchModeWatcher returns a watcher starting out of touch mode.
func NewTouchModeWatcher() *TouchModeWatcher {
	return &TouchModeWatcher{
		subscribers: make(map[int]func(bool)),
	}
}

// InTouchMode returns the current mode.
func (w *TouchModeWatcher) InTouchMode() bool {
	return w.inTouchMode
}

// Subscribe registers fn for mode changes and returns a cancel func.
func (w *TouchModeWatcher) Subscribe(fn func(inTouchMode bool)) (cancel func()) {
	id := w.nextID
	w.nextID++
	w.subscribers[id] = fn
	return func() {
		delete(w.subscribers, id)
	}
}

// Update inspects the frame's input and flips the mode when the user
// switches between pointer and keys. Call once per frame after input
// collection.
func (w *TouchModeWatcher) Update(input *InputState) {
	switch {
	case input.AnyKeyActivity():
		w.setMode(false)
	case input.AnyPointerActivity():
		w.setMode(true)
	}
}

// SetTouchMode forces the mode, notifying subscribers on change.
func (w *TouchModeWatcher) SetTouchMode(inTouchMode bool) {
	w.setMode(inTouchMode)
}

func (w *TouchModeWatcher) setMode(inTouchMode bool) {
	if w.inTouchMode == inTouchMode {
		return
	}
	w.inTouchMode = inTouchMode
	for _, fn := range w.subscribers {
		fn(inTouchMode)
	}
}

package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/dpadware/listview"
)

// GLFWInputAdapter adapts GLFW input to listview.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *listview.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  listview.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame.
func (a *GLFWInputAdapter) Update() *listview.InputState {
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *listview.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	lvKey := glfwKeyToListKey(key)
	if lvKey == listview.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(lvKey, true)
	case glfw.Release:
		a.input.SetKey(lvKey, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	lvButton := glfwMouseButtonToList(button)
	if lvButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(lvButton, true)
	case glfw.Release:
		a.input.SetMouseButton(lvButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToListKey maps GLFW keys to listview keys.
func glfwKeyToListKey(key glfw.Key) listview.Key {
	switch key {
	case glfw.KeyTab:
		return listview.KeyTab
	case glfw.KeyLeft:
		return listview.KeyLeft
	case glfw.KeyRight:
		return listview.KeyRight
	case glfw.KeyUp:
		return listview.KeyUp
	case glfw.KeyDown:
		return listview.KeyDown
	case glfw.KeyPageUp:
		return listview.KeyPageUp
	case glfw.KeyPageDown:
		return listview.KeyPageDown
	case glfw.KeyHome:
		return listview.KeyHome
	case glfw.KeyEnd:
		return listview.KeyEnd
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return listview.KeyEnter
	case glfw.KeyEscape:
		return listview.KeyEscape
	default:
		return listview.KeyNone
	}
}

// glfwMouseButtonToList maps GLFW mouse buttons to listview buttons.
func glfwMouseButtonToList(button glfw.MouseButton) listview.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return listview.MouseButtonLeft
	case glfw.MouseButtonRight:
		return listview.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return listview.MouseButtonMiddle
	default:
		return -1
	}
}

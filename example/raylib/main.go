// Example demonstrates the listview raylib backend: the same D-pad
// navigated list as the OpenGL example, rendered through raylib.
//
//	go run ./example/raylib/
package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dpadware/listview"
	rlbackend "github.com/dpadware/listview/backend/raylib"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "listview raylib example")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := rlbackend.NewRenderer(windowWidth, windowHeight)
	defer renderer.Delete()

	style := listview.DefaultListBoxStyle()
	list := listview.NewListBox(windowWidth, windowHeight,
		listview.WithScrollOffsetFractionY(0.5),
		listview.WithSmoothScrolling(true),
		listview.WithSelectorVelocity(1200),
		listview.WithBackgroundSelector(listview.NewRectPaintable(style.SelectorFillColor, 0, 0)),
		listview.WithForegroundSelector(listview.NewRectPaintable(0, style.SelectorOutlineColor, style.SelectorThickness)),
	)
	list.SetFontTexture(renderer.FontTextureID())

	labels := make([]string, 40)
	for i := range labels {
		labels[i] = fmt.Sprintf("Channel %02d", i+1)
	}
	list.SetItems(labels)

	watcher := listview.NewTouchModeWatcher()
	list.View().Attach(watcher)
	defer list.View().Detach()

	list.SetFocused(true)

	input := listview.NewInputState()
	dl := listview.NewDrawList()

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		collectInput(input)
		input.UpdateKeyRepeat(dt)
		watcher.Update(input)
		list.HandleInput(input)
		list.Tick(dt)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(13, 13, 15, 255))

		dl.Clear()
		list.Draw(dl)
		renderer.Render(dl)

		rl.EndDrawing()
	}
}

// collectInput polls raylib input into the listview input state.
func collectInput(input *listview.InputState) {
	input.Reset()

	pos := rl.GetMousePosition()
	input.SetMousePos(pos.X, pos.Y)
	input.SetMouseButton(listview.MouseButtonLeft, rl.IsMouseButtonDown(rl.MouseButtonLeft))
	input.SetMouseWheel(0, rl.GetMouseWheelMove())

	keys := map[listview.Key]int32{
		listview.KeyUp:       rl.KeyUp,
		listview.KeyDown:     rl.KeyDown,
		listview.KeyLeft:     rl.KeyLeft,
		listview.KeyRight:    rl.KeyRight,
		listview.KeyPageUp:   rl.KeyPageUp,
		listview.KeyPageDown: rl.KeyPageDown,
		listview.KeyHome:     rl.KeyHome,
		listview.KeyEnd:      rl.KeyEnd,
		listview.KeyEnter:    rl.KeyEnter,
		listview.KeyEscape:   rl.KeyEscape,
	}
	for lvKey, rlKey := range keys {
		input.SetKey(lvKey, rl.IsKeyDown(rlKey))
	}
}

// Example demonstrates D-pad navigation over a scrollable list with
// animated selector overlays.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Arrow keys move focus; the selector glides between rows and the
// focused row stays anchored at the vertical center of the window.
// Moving the mouse hides the selector until the next key press.
// An optional TOML config file tunes the selector and camera:
//
//	go run ./example/ -config listview.toml
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/dpadware/listview"
	"github.com/dpadware/listview/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "listview example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "optional TOML config file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	listview.SetVerbose(*verbose)

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	opts, err := viewOptions(configPath)
	if err != nil {
		return err
	}

	list := listview.NewListBox(windowWidth, windowHeight, opts...)
	list.SetFontTexture(renderer.FontTextureID())

	labels := make([]string, 40)
	for i := range labels {
		labels[i] = fmt.Sprintf("Channel %02d", i+1)
	}
	list.SetItems(labels)

	// Touch mode: pointer use hides the selector, keys bring it back.
	watcher := listview.NewTouchModeWatcher()
	list.View().Attach(watcher)
	defer list.View().Detach()

	list.SetFocused(true)

	dl := listview.NewDrawList()
	last := time.Now()

	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		input.UpdateKeyRepeat(dt)
		watcher.Update(input)
		list.HandleInput(input)
		list.Tick(dt)

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.05, 0.05, 0.06, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Resize(w, h)

		dl.Clear()
		list.Draw(dl)
		if err := renderer.Render(dl); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// viewOptions builds View options from the config file, or a default
// setup with a centered camera and a gliding selector.
func viewOptions(configPath string) ([]listview.ViewOption, error) {
	if configPath != "" {
		cfg, err := listview.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		opts, err := cfg.Options()
		if err != nil {
			return nil, err
		}
		return opts, nil
	}

	style := listview.DefaultListBoxStyle()
	return []listview.ViewOption{
		listview.WithScrollOffsetFractionY(0.5),
		listview.WithSmoothScrolling(true),
		listview.WithSelectorVelocity(1200),
		listview.WithBackgroundSelector(listview.NewRectPaintable(style.SelectorFillColor, 0, 0)),
		listview.WithForegroundSelector(listview.NewRectPaintable(0, style.SelectorOutlineColor, style.SelectorThickness)),
	}, nil
}

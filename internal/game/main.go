//go:build !android

package game

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"catapult/internal/audio"
	"catapult/internal/sim"
)

// Options configures a desktop session.
type Options struct {
	RosterSize int
	Mute       bool
}

// RunDesktop opens the window and plays until it is closed or a quit
// command arrives. Window, context and shader failures are returned.
func RunDesktop(opts Options) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Printf("GL vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	log.Printf("GL renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	log.Printf("GL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Printf("GLSL version: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	bus := sim.NewEventBus()
	sim.LogEvents(bus, log.Default())
	if !opts.Mute {
		if sfx, err := audio.New(); err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			sfx.Attach(bus)
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)
	gl.LineWidth(1)
	gl.ClearColor(sim.Sky[0], sim.Sky[1], sim.Sky[2], 1.0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	scene := sim.NewScene(opts.RosterSize, bus)
	if err := scene.Upload(rend); err != nil {
		return err
	}
	input := NewInput()

	status := ""
	for !window.ShouldClose() && !scene.Quit() {
		glfw.PollEvents()
		input.Poll(window, glfw.GetTime(), &scene.Queue)
		scene.Update()

		fbW, fbH := window.GetFramebufferSize()
		rend.Viewport(fbW, fbH)
		scene.Render(rend)

		if s := scene.Status(); s != status {
			status = s
			window.SetTitle(WindowTitle + "  |  " + s)
		}
		window.SwapBuffers()
	}
	return nil
}

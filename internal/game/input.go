//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"catapult/internal/sim"
)

type binding struct {
	key    glfw.Key
	cmd    sim.Command
	repeat bool // held key keeps issuing the command
}

var bindings = []binding{
	{glfw.KeyA, sim.CmdAngleUp, true},
	{glfw.KeyD, sim.CmdAngleDown, true},
	{glfw.KeyW, sim.CmdPowerUp, true},
	{glfw.KeyS, sim.CmdPowerDown, true},
	{glfw.KeySpace, sim.CmdFire, false},
	{glfw.KeyUp, sim.CmdZoomIn, true},
	{glfw.KeyDown, sim.CmdZoomOut, true},
	{glfw.KeyLeft, sim.CmdPanLeft, true},
	{glfw.KeyRight, sim.CmdPanRight, true},
	{glfw.KeyR, sim.CmdReset, false},
	{glfw.KeyQ, sim.CmdQuit, false},
	{glfw.KeyEscape, sim.CmdQuit, false},
}

type Input struct {
	prevKeys map[glfw.Key]bool
	repeats  map[glfw.Key]*keyRepeat
}

func NewInput() *Input {
	in := &Input{
		prevKeys: make(map[glfw.Key]bool),
		repeats:  make(map[glfw.Key]*keyRepeat),
	}
	for _, b := range bindings {
		if b.repeat {
			in.repeats[b.key] = &keyRepeat{delay: RepeatDelay, interval: RepeatInterval}
		}
	}
	return in
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Poll pushes the command of every binding that fired this frame.
func (in *Input) Poll(window *glfw.Window, now float64, q *sim.CommandQueue) {
	for _, b := range bindings {
		var fire bool
		if r, ok := in.repeats[b.key]; ok {
			fire = r.update(window.GetKey(b.key) == glfw.Press, now)
		} else {
			fire = in.JustPressed(window, b.key)
		}
		if fire {
			q.Push(b.cmd)
		}
	}
}

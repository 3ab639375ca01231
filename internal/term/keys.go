package term

import (
	"github.com/gdamore/tcell/v2"

	"catapult/internal/sim"
)

var runeCommands = map[rune]sim.Command{
	'a': sim.CmdAngleUp,
	'd': sim.CmdAngleDown,
	'w': sim.CmdPowerUp,
	's': sim.CmdPowerDown,
	' ': sim.CmdFire,
	'+': sim.CmdZoomIn,
	'=': sim.CmdZoomIn,
	'-': sim.CmdZoomOut,
	'r': sim.CmdReset,
	'q': sim.CmdQuit,
}

var keyCommands = map[tcell.Key]sim.Command{
	tcell.KeyUp:     sim.CmdZoomIn,
	tcell.KeyDown:   sim.CmdZoomOut,
	tcell.KeyLeft:   sim.CmdPanLeft,
	tcell.KeyRight:  sim.CmdPanRight,
	tcell.KeyEscape: sim.CmdQuit,
	tcell.KeyCtrlC:  sim.CmdQuit,
}

// CommandFor translates a key event. Terminals deliver auto-repeat as
// repeated events, so holding a key keeps adjusting.
func CommandFor(ev *tcell.EventKey) sim.Command {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return runeCommands[r]
	}
	return keyCommands[ev.Key()]
}

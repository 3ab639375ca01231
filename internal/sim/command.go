package sim

// Command is a discrete operator action delivered by an input source.
type Command int

const (
	CmdNone Command = iota
	CmdAngleUp
	CmdAngleDown
	CmdPowerUp
	CmdPowerDown
	CmdFire
	CmdZoomIn
	CmdZoomOut
	CmdPanLeft
	CmdPanRight
	CmdReset
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:      "none",
	CmdAngleUp:   "angle-up",
	CmdAngleDown: "angle-down",
	CmdPowerUp:   "power-up",
	CmdPowerDown: "power-down",
	CmdFire:      "fire",
	CmdZoomIn:    "zoom-in",
	CmdZoomOut:   "zoom-out",
	CmdPanLeft:   "pan-left",
	CmdPanRight:  "pan-right",
	CmdReset:     "reset",
	CmdQuit:      "quit",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// CommandQueue buffers commands between input polls and the next update.
type CommandQueue struct {
	cmds []Command
}

func (q *CommandQueue) Push(c Command) {
	if c == CmdNone {
		return
	}
	q.cmds = append(q.cmds, c)
}

func (q *CommandQueue) Len() int { return len(q.cmds) }

// Drain hands every queued command to fn in arrival order and empties the queue.
func (q *CommandQueue) Drain(fn func(Command)) {
	for i := 0; i < len(q.cmds); i++ {
		fn(q.cmds[i])
	}
	q.cmds = q.cmds[:0]
}

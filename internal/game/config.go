package game

const WindowTitle = "Catapult"

// Held-key auto-repeat, in seconds.
const (
	RepeatDelay    = 0.25
	RepeatInterval = 1.0 / 30
)

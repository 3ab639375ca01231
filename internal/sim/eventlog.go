package sim

import (
	"log"

	"github.com/ttacon/chalk"
)

var eventColours = map[EventType]chalk.Color{
	EventLaunched:        chalk.Blue,
	EventLanded:          chalk.Green,
	EventLost:            chalk.Red,
	EventTurnReady:       chalk.Cyan,
	EventRosterExhausted: chalk.Yellow,
}

// LogEvents writes one coloured line per event to l.
func LogEvents(bus *EventBus, l *log.Logger) {
	bus.SubscribeAll(func(e Event) {
		l.Printf("%s bird %d at (%.2f, %.2f)", eventColours[e.Type].Color(e.Type.String()), e.Index, e.X, e.Y)
	})
}

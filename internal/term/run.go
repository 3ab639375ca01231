package term

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"catapult/internal/sim"
)

const frameInterval = 16 * time.Millisecond

// Game drives a scene on a terminal screen.
type Game struct {
	screen   tcell.Screen
	scene    *sim.Scene
	renderer *Renderer
}

func NewGame(screen tcell.Screen, scene *sim.Scene) (*Game, error) {
	g := &Game{
		screen:   screen,
		scene:    scene,
		renderer: NewRenderer(screen),
	}
	if err := scene.Upload(g.renderer); err != nil {
		return nil, err
	}
	return g, nil
}

// HandleEvent queues the command for a key press and repaints on resize.
func (g *Game) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.scene.Queue.Push(CommandFor(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// Frame steps the simulation once and draws the result.
func (g *Game) Frame() {
	g.scene.Update()
	g.scene.Render(g.renderer)
	g.renderer.Present(g.scene.Status())
}

// Loop runs until the scene is quit or events closes.
func (g *Game) Loop(events <-chan tcell.Event, tick <-chan time.Time) {
	for !g.scene.Quit() {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			g.HandleEvent(ev)
		case <-tick:
			g.Frame()
		}
	}
}

// Run opens the terminal and plays until quit. The standard logger is
// silenced while the screen owns the terminal.
func Run(rosterSize int, mute bool) error {
	bus := sim.NewEventBus()
	sim.LogEvents(bus, log.Default())
	if !mute {
		if tones, err := NewTones(); err != nil {
			log.Printf("audio init warning: %v", err)
		} else {
			tones.Attach(bus)
			defer tones.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	prev := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(prev)

	g, err := NewGame(screen, sim.NewScene(rosterSize, bus))
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	g.Loop(events, ticker.C)
	return nil
}

package main

import (
	"log"
	"os"
	"strconv"

	"github.com/ttacon/chalk"

	"catapult/internal/game"
	"catapult/internal/sim"
	"catapult/internal/term"
)

type config struct {
	terminal   bool
	mute       bool
	rosterSize int
}

// loadConfig reads CATAPULT_TERMINAL, CATAPULT_MUTE and CATAPULT_ROSTER.
// Unparsable or out-of-range values fall back to the defaults.
func loadConfig(getenv func(string) string) config {
	c := config{rosterSize: sim.RosterSize}
	c.terminal = envBool(getenv("CATAPULT_TERMINAL"))
	c.mute = envBool(getenv("CATAPULT_MUTE"))
	if s := getenv("CATAPULT_ROSTER"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= sim.MaxRosterSize {
			c.rosterSize = n
		} else {
			log.Printf("ignoring CATAPULT_ROSTER=%q: want 1..%d", s, sim.MaxRosterSize)
		}
	}
	return c
}

func envBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func main() {
	log.SetFlags(log.Ltime)
	log.SetPrefix(chalk.Magenta.Color("catapult") + " ")

	cfg := loadConfig(os.Getenv)

	var err error
	if cfg.terminal {
		err = term.Run(cfg.rosterSize, cfg.mute)
	} else {
		err = game.RunDesktop(game.Options{RosterSize: cfg.rosterSize, Mute: cfg.mute})
	}
	if err != nil {
		log.Print(chalk.Red.Color(err.Error()))
		os.Exit(1)
	}
}

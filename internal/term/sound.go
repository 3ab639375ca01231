package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"catapult/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq float64
	dur  time.Duration
}

var cues = map[sim.EventType][]tone{
	sim.EventLaunched:        {{440, 60 * time.Millisecond}, {660, 80 * time.Millisecond}},
	sim.EventLanded:          {{110, 120 * time.Millisecond}},
	sim.EventLost:            {{880, 90 * time.Millisecond}, {440, 90 * time.Millisecond}, {220, 120 * time.Millisecond}},
	sim.EventTurnReady:       {{988, 70 * time.Millisecond}},
	sim.EventRosterExhausted: {{784, 110 * time.Millisecond}, {659, 110 * time.Millisecond}, {523, 220 * time.Millisecond}},
}

// Tones plays short sine cues on the beep speaker.
type Tones struct {
	mixer  *beep.Mixer
	volume float64 // log2 gain
}

// NewTones initialises the speaker. Only one speaker may exist per process.
func NewTones() (*Tones, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	t := &Tones{mixer: &beep.Mixer{}, volume: -1.5}
	speaker.Play(t.mixer)
	return t, nil
}

// Attach plays a cue for every simulation event.
func (t *Tones) Attach(bus *sim.EventBus) {
	bus.SubscribeAll(func(e sim.Event) { t.Cue(e.Type) })
}

func (t *Tones) Cue(kind sim.EventType) {
	if t == nil {
		return
	}
	s, err := cueStreamer(kind)
	if err != nil || s == nil {
		return
	}
	speaker.Lock()
	t.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: t.volume})
	speaker.Unlock()
}

// Close silences anything still playing.
func (t *Tones) Close() {
	if t == nil {
		return
	}
	speaker.Lock()
	t.mixer.Clear()
	speaker.Unlock()
}

// cueStreamer sequences the sine tones of a cue.
func cueStreamer(kind sim.EventType) (beep.Streamer, error) {
	notes, ok := cues[kind]
	if !ok {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}
	return beep.Seq(parts...), nil
}

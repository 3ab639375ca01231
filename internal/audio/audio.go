//go:build !android

package audio

import (
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"catapult/internal/sim"
)

// System plays procedurally generated cues on an oto context.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu    sync.Mutex
	cache map[Kind][]byte
}

// New opens the audio device. The context becomes usable once ready closes;
// cues played before that are dropped.
func New() (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &System{
		ctx:    ctx,
		ready:  ready,
		volume: 0.6,
		cache:  make(map[Kind][]byte),
	}, nil
}

// Attach subscribes the system to the simulation's event bus.
func (s *System) Attach(bus *sim.EventBus) {
	bus.Subscribe(sim.EventLaunched, func(e sim.Event) {
		s.PlayWithGain(SoundLaunch, launchGain(e.Speed))
	})
	bus.Subscribe(sim.EventLanded, func(e sim.Event) {
		s.PlayWithGain(SoundImpact, impactGain(e.Speed))
	})
	bus.Subscribe(sim.EventLost, func(sim.Event) { s.Play(SoundLost) })
	bus.Subscribe(sim.EventTurnReady, func(sim.Event) { s.Play(SoundReady) })
	bus.Subscribe(sim.EventRosterExhausted, func(sim.Event) { s.Play(SoundFinished) })
}

func (s *System) Play(kind Kind) {
	s.PlayWithGain(kind, 1)
}

// PlayWithGain plays kind scaled by gain in [0,1] without blocking.
func (s *System) PlayWithGain(kind Kind, gain float64) {
	if s == nil || gain <= 0 {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	samples := s.samples(kind)
	if len(samples) == 0 {
		return
	}
	vol := s.volume * clamp01(gain)
	go func() {
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func (s *System) samples(kind Kind) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.cache[kind]; ok {
		return b
	}
	b := Generate(kind)
	s.cache[kind] = b
	return b
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// launchGain maps launch speed (power/9 scale, at most 1/3) to loudness.
func launchGain(speed float32) float64 {
	return 0.4 + 0.6*clamp01(float64(speed)*3)
}

// impactGain is zero for the resting contacts that follow the first bounce.
func impactGain(speed float32) float64 {
	if speed < 0.002 {
		return 0
	}
	return 0.3 + 0.7*clamp01(float64(speed)*6)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

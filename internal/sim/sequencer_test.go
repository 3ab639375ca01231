package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventLog struct {
	events []Event
}

func (l *eventLog) record(e Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestSequencer(n int) (*Sequencer, *eventLog) {
	log := &eventLog{}
	bus := NewEventBus()
	bus.SubscribeAll(log.record)
	return NewSequencer(n, NewGround(), bus), log
}

// stepUntilIdle steps until the sequencer waits for input again or is finished.
func stepUntilIdle(t *testing.T, s *Sequencer) int {
	t.Helper()
	for i := 1; i <= 5000; i++ {
		s.Step()
		if s.State == StateWaiting || s.State == StateFinished {
			return i
		}
	}
	t.Fatalf("sequencer stuck in %s", s.State)
	return 0
}

func activeCount(s *Sequencer) int {
	n := 0
	for i := range s.Birds {
		if s.Birds[i].Active {
			n++
		}
	}
	return n
}

func TestNewRosterLayout(t *testing.T) {
	birds := NewRoster(6)
	require.Len(t, birds, 6)

	assert.Equal(t, mgl32.Vec2{FirstBirdX, FirstBirdY}, birds[0].Pos)
	assert.True(t, birds[0].Active)
	for i := 1; i < 6; i++ {
		assert.InDelta(t, QueueStartX-QueueSpacing*float64(i-1), birds[i].Pos[0], 1e-5)
		assert.InDelta(t, QueueY, birds[i].Pos[1], 1e-6)
		assert.False(t, birds[i].Active)
		assert.Equal(t, float32(BirdRadius), birds[i].Radius)
	}
	assert.Len(t, NewRoster(0), 1)
}

func TestStartsWaitingForInput(t *testing.T) {
	s, _ := newTestSequencer(RosterSize)
	assert.Equal(t, StateWaiting, s.State)
	assert.Equal(t, 0, s.Active())
	assert.Equal(t, -1, s.Fired())
	assert.Equal(t, RosterSize, s.Remaining())
}

func TestFiringHandsTurnToNextBird(t *testing.T) {
	s, log := newTestSequencer(6)

	for i := 0; i < 5; i++ {
		require.Equal(t, StateWaiting, s.State)
		require.True(t, s.Fire(DefaultLaunchParams()))

		assert.Equal(t, StateInFlight, s.State)
		assert.True(t, s.Birds[i].Launched)
		assert.False(t, s.Birds[i].Active)
		assert.Equal(t, i+1, s.Active())
		assert.True(t, s.Birds[i+1].Active)
		assert.Equal(t, 1, activeCount(s))

		stepUntilIdle(t, s)
		assert.True(t, s.Birds[i].Landed)
	}

	require.True(t, s.Fire(DefaultLaunchParams()), "last bird may be fired")
	assert.Equal(t, -1, s.Active())
	assert.Zero(t, activeCount(s))

	stepUntilIdle(t, s)
	assert.Equal(t, StateFinished, s.State)
	assert.False(t, s.Fire(DefaultLaunchParams()))
	assert.Zero(t, s.Remaining())

	assert.Equal(t, 6, log.count(EventLaunched))
	assert.Equal(t, 6, log.count(EventLanded))
	assert.Equal(t, 5, log.count(EventTurnReady))
	assert.Equal(t, 1, log.count(EventRosterExhausted))
}

func TestFireIgnoredUnlessWaiting(t *testing.T) {
	s, _ := newTestSequencer(3)
	require.True(t, s.Fire(DefaultLaunchParams()))
	assert.False(t, s.Fire(DefaultLaunchParams()))
	assert.Equal(t, 1, s.Active())
	assert.False(t, s.Birds[1].Launched)
}

func TestNextBirdWaitsForLanding(t *testing.T) {
	s, _ := newTestSequencer(2)
	start := s.Birds[1].Pos
	require.True(t, s.Fire(DefaultLaunchParams()))

	for s.State == StateInFlight {
		assert.Equal(t, start, s.Birds[1].Pos, "next bird must not move while the shot is airborne")
		s.Step()
	}
	assert.True(t, s.Birds[0].Landed)
}

func TestWaitingNeedsBothSlotThresholds(t *testing.T) {
	s, _ := newTestSequencer(2)
	s.Birds[0].Launched = true
	s.Birds[0].Landed = true
	s.fired, s.active = 0, 1

	// x past the slot, y still below it.
	s.State = StateAdvancing
	s.Birds[1].Pos = mgl32.Vec2{SlotX + 0.3, SlotY - 0.5}
	s.Step()
	assert.Equal(t, StateAdvancing, s.State)

	// y above the slot, x still short of it.
	s.Birds[1].Pos = mgl32.Vec2{SlotX - 0.5, SlotY + 0.3}
	s.Step()
	assert.Equal(t, StateAdvancing, s.State)

	for s.State == StateAdvancing {
		s.Step()
	}
	require.Equal(t, StateWaiting, s.State)
	p := s.Birds[1].Pos
	assert.GreaterOrEqual(t, p[0], float32(SlotX))
	assert.GreaterOrEqual(t, p[1], float32(SlotY))
}

func TestSingleBirdRosterFinishes(t *testing.T) {
	s, log := newTestSequencer(1)
	require.True(t, s.Fire(DefaultLaunchParams()))
	assert.Equal(t, -1, s.Active())

	stepUntilIdle(t, s)
	assert.Equal(t, StateFinished, s.State)
	assert.Equal(t, 1, log.count(EventRosterExhausted))
	assert.Zero(t, log.count(EventTurnReady))
}

func TestShotPastGroundIsLostAndTurnMovesOn(t *testing.T) {
	s, log := newTestSequencer(2)
	require.True(t, s.Fire(LaunchParams{Angle: 45, Power: MaxPower}))

	stepUntilIdle(t, s)
	assert.True(t, s.Birds[0].Lost)
	assert.False(t, s.Birds[0].Landed)
	assert.Equal(t, StateWaiting, s.State)
	assert.Equal(t, 1, log.count(EventLost))
	assert.Zero(t, log.count(EventLanded))
}

func TestResetRestoresRoster(t *testing.T) {
	s, _ := newTestSequencer(3)
	s.Fire(DefaultLaunchParams())
	stepUntilIdle(t, s)

	s.Reset(4)
	assert.Equal(t, StateWaiting, s.State)
	assert.Len(t, s.Birds, 4)
	assert.Equal(t, 0, s.Active())
	assert.Equal(t, 4, s.Remaining())
}

func TestTurnStateNames(t *testing.T) {
	assert.Equal(t, "WAITING_FOR_INPUT", StateWaiting.String())
	assert.Equal(t, "IN_FLIGHT", StateInFlight.String())
	assert.Equal(t, "ADVANCING", StateAdvancing.String())
	assert.Equal(t, "FINISHED", StateFinished.String())
}

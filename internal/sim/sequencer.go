package sim

import "github.com/go-gl/mathgl/mgl32"

type TurnState int

const (
	StateWaiting   TurnState = iota // nothing airborne, a shot may be fired
	StateInFlight                   // the fired bird has not settled yet
	StateAdvancing                  // next bird sliding into the launch slot
	StateFinished                   // roster spent, last bird settled
)

func (s TurnState) String() string {
	switch s {
	case StateWaiting:
		return "WAITING_FOR_INPUT"
	case StateInFlight:
		return "IN_FLIGHT"
	case StateAdvancing:
		return "ADVANCING"
	case StateFinished:
		return "FINISHED"
	}
	return "UNKNOWN"
}

// NewRoster lays out n birds: the first one in the launch position, the
// rest queued on the ground behind the catapult.
func NewRoster(n int) []Projectile {
	if n < 1 {
		n = 1
	}
	birds := make([]Projectile, n)
	birds[0] = NewProjectile(FirstBirdX, FirstBirdY)
	birds[0].Active = true
	x := float32(QueueStartX)
	for i := 1; i < n; i++ {
		birds[i] = NewProjectile(x, QueueY)
		x -= QueueSpacing
	}
	return birds
}

// Sequencer owns the roster and decides which bird may be fired and when
// control passes to the next one.
type Sequencer struct {
	State  TurnState
	Birds  []Projectile
	Ground Ground
	Slot   mgl32.Vec2

	fired  int // index of the bird last fired, -1 before the first shot
	active int // index of the bird holding the turn, -1 once the roster is spent
	bus    *EventBus
}

func NewSequencer(n int, ground Ground, bus *EventBus) *Sequencer {
	s := &Sequencer{
		Ground: ground,
		Slot:   mgl32.Vec2{SlotX, SlotY},
		bus:    bus,
	}
	s.Reset(n)
	return s
}

// Reset rebuilds the roster and waits for the first shot.
func (s *Sequencer) Reset(n int) {
	s.Birds = NewRoster(n)
	s.State = StateWaiting
	s.fired = -1
	s.active = 0
}

// Active returns the index of the bird holding the turn, or -1.
func (s *Sequencer) Active() int { return s.active }

// Fired returns the index of the bird last fired, or -1.
func (s *Sequencer) Fired() int { return s.fired }

// Remaining returns how many birds have not been fired yet.
func (s *Sequencer) Remaining() int {
	n := 0
	for i := range s.Birds {
		if !s.Birds[i].Launched {
			n++
		}
	}
	return n
}

// Fire launches the active bird with params. It is ignored unless the
// sequencer is waiting for input.
func (s *Sequencer) Fire(params LaunchParams) bool {
	if s.State != StateWaiting || s.active < 0 {
		return false
	}
	i := s.active
	b := &s.Birds[i]
	b.Fire(params)
	s.fired = i
	if i+1 < len(s.Birds) {
		s.active = i + 1
		s.Birds[s.active].Active = true
	} else {
		s.active = -1
	}
	s.State = StateInFlight
	s.bus.Emit(Event{Type: EventLaunched, Index: i, X: b.Pos[0], Y: b.Pos[1], Speed: b.Vel.Len()})
	return true
}

// Step advances one frame: every airborne bird is integrated and resolved
// against the ground in roster order, then the turn state is re-evaluated.
func (s *Sequencer) Step() {
	for i := range s.Birds {
		b := &s.Birds[i]
		if !b.Flying() {
			continue
		}
		b.Integrate(TimeStep, Gravity)
		if b.Lost {
			s.bus.Emit(Event{Type: EventLost, Index: i, X: b.Pos[0], Y: b.Pos[1]})
			continue
		}
		impact := b.Vel.Len()
		if s.Ground.Resolve(b) {
			s.bus.Emit(Event{Type: EventLanded, Index: i, X: b.Pos[0], Y: b.Pos[1], Speed: impact})
		}
	}

	switch s.State {
	case StateInFlight:
		if !s.Birds[s.fired].Settled() {
			return
		}
		if s.active < 0 {
			s.State = StateFinished
			s.bus.Emit(Event{Type: EventRosterExhausted, Index: s.fired})
			return
		}
		s.State = StateAdvancing
		s.advance()
	case StateAdvancing:
		s.advance()
	}
}

func (s *Sequencer) advance() {
	b := &s.Birds[s.active]
	if b.slideToward(s.Slot, SlideStep) {
		s.State = StateWaiting
		s.bus.Emit(Event{Type: EventTurnReady, Index: s.active, X: b.Pos[0], Y: b.Pos[1]})
	}
}

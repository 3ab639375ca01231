package sim

import "github.com/go-gl/mathgl/mgl32"

// Projectile is one launchable bird.
type Projectile struct {
	Pos    mgl32.Vec2
	Vel    mgl32.Vec2
	Speed  mgl32.Vec2 // launch speed components, fixed when fired
	Clock  float32    // flight time since launch
	Radius float32

	Launched bool
	Active   bool // holds the turn; the next Fire launches this one
	Landed   bool
	Lost     bool // fell off the playfield without touching the ground
}

func NewProjectile(x, y float32) Projectile {
	return Projectile{
		Pos:    mgl32.Vec2{x, y},
		Radius: BirdRadius,
	}
}

// Fire assigns launch velocity from params and marks the bird airborne.
func (p *Projectile) Fire(params LaunchParams) {
	v := params.Velocity()
	p.Speed = v
	p.Vel = v
	p.Clock = 0
	p.Launched = true
	p.Active = false
	p.Landed = false
	p.Lost = false
}

// Flying reports whether the integrator still moves this bird.
func (p *Projectile) Flying() bool {
	return p.Launched && !p.Landed && !p.Lost
}

// Settled reports whether a launched bird has come to rest or left the field.
func (p *Projectile) Settled() bool {
	return p.Launched && (p.Landed || p.Lost)
}

// Integrate advances one frame of flight. Velocity is updated before
// position (semi-implicit Euler); vx is never changed here.
// Returns false when the bird is not in flight.
func (p *Projectile) Integrate(dt, g float32) bool {
	if !p.Flying() {
		return false
	}
	p.Clock += dt
	p.Vel[1] -= p.Clock * g
	p.Pos[0] += p.Vel[0]
	p.Pos[1] += p.Vel[1]
	if p.Pos[1] < KillY {
		p.Lost = true
	}
	return true
}

// slideToward moves the bird one step toward the launch slot: x first,
// then y once x has reached the slot. Returns true when both coordinates
// are at or past the slot.
func (p *Projectile) slideToward(slot mgl32.Vec2, step float32) bool {
	if p.Pos[0] <= slot[0] {
		p.Pos[0] += step
	}
	if p.Pos[0] >= slot[0] && p.Pos[1] <= slot[1] {
		p.Pos[1] += step
	}
	return p.Pos[0] >= slot[0] && p.Pos[1] >= slot[1]
}

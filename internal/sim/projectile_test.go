package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrateIsNoopBeforeLaunch(t *testing.T) {
	p := NewProjectile(1, 2)
	p.Vel = mgl32.Vec2{0.3, -0.4}
	before := p

	for range 100 {
		assert.False(t, p.Integrate(TimeStep, Gravity))
	}
	assert.Equal(t, before, p)
}

func TestIntegrateUpdatesVelocityBeforePosition(t *testing.T) {
	p := NewProjectile(0, 0)
	p.Launched = true
	p.Vel = mgl32.Vec2{0.1, 0.2}

	require.True(t, p.Integrate(TimeStep, Gravity))

	wantVy := float32(0.2) - float32(TimeStep)*float32(Gravity)
	assert.InDelta(t, TimeStep, p.Clock, 1e-9)
	assert.InDelta(t, wantVy, p.Vel[1], 1e-7)
	assert.InDelta(t, 0.1, p.Pos[0], 1e-7)
	assert.InDelta(t, wantVy, p.Pos[1], 1e-7, "position must use the updated vy")

	require.True(t, p.Integrate(TimeStep, Gravity))
	wantVy2 := wantVy - 2*float32(TimeStep)*float32(Gravity)
	assert.InDelta(t, wantVy2, p.Vel[1], 1e-7, "pull grows with flight time")
}

func TestHorizontalSpeedNeverDecaysInFlight(t *testing.T) {
	params := LaunchParams{Angle: 30, Power: 2}
	want := float32(2 * PowerScale * math.Cos(30*math.Pi/180))

	p := NewProjectile(0, 100)
	p.Fire(params)
	for n := range 500 {
		p.Integrate(TimeStep, Gravity)
		require.InDelta(t, want, p.Vel[0], 1e-6, "step %d", n)
	}
	assert.Equal(t, params.Velocity()[0], p.Vel[0])
}

func TestFlightClockFrozenOnceLanded(t *testing.T) {
	p := NewProjectile(0, 0)
	p.Fire(DefaultLaunchParams())
	p.Integrate(TimeStep, Gravity)
	p.Landed = true
	clock, pos := p.Clock, p.Pos

	assert.False(t, p.Integrate(TimeStep, Gravity))
	assert.Equal(t, clock, p.Clock)
	assert.Equal(t, pos, p.Pos)
}

func TestFallingBelowKillFloorMarksLost(t *testing.T) {
	p := NewProjectile(20, KillY+0.1)
	p.Launched = true
	p.Vel = mgl32.Vec2{0, -0.2}

	require.True(t, p.Integrate(TimeStep, Gravity))
	assert.True(t, p.Lost)
	assert.True(t, p.Settled())
	assert.False(t, p.Integrate(TimeStep, Gravity))
}

func TestFireResetsFlightState(t *testing.T) {
	p := NewProjectile(0, 0)
	p.Active = true
	p.Clock = 3
	p.Fire(LaunchParams{Angle: 90, Power: 1})

	assert.True(t, p.Launched)
	assert.False(t, p.Active)
	assert.Zero(t, p.Clock)
	assert.Equal(t, p.Speed, p.Vel)
	assert.InDelta(t, PowerScale, p.Vel[1], 1e-6)
}

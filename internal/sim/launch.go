package sim

import "github.com/go-gl/mathgl/mgl32"

// LaunchParams is the operator-controlled aim: angle in degrees and power.
type LaunchParams struct {
	Angle float32
	Power float32
}

func DefaultLaunchParams() LaunchParams {
	return LaunchParams{Angle: DefaultAngle, Power: DefaultPower}
}

func (lp *LaunchParams) AdjustAngle(delta float32) {
	lp.Angle = mgl32.Clamp(lp.Angle+delta, MinAngle, MaxAngle)
}

func (lp *LaunchParams) AdjustPower(delta float32) {
	lp.Power = mgl32.Clamp(lp.Power+delta, MinPower, MaxPower)
}

// Velocity returns the initial per-frame velocity for a shot fired now.
func (lp LaunchParams) Velocity() mgl32.Vec2 {
	s, c := sinCos(lp.Angle)
	k := lp.Power * PowerScale
	return mgl32.Vec2{k * c, k * s}
}

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVelocityFollowsAngleAndPower(t *testing.T) {
	cases := []struct {
		name   string
		params LaunchParams
		vx, vy float64
	}{
		{"flat", LaunchParams{Angle: 0, Power: 1}, PowerScale, 0},
		{"straight up", LaunchParams{Angle: 90, Power: 1}, 0, PowerScale},
		{"default", DefaultLaunchParams(), 0.0785674, 0.0785674},
		{"double power", LaunchParams{Angle: 0, Power: 2}, 2 * PowerScale, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.params.Velocity()
			assert.InDelta(t, tc.vx, v[0], 1e-6)
			assert.InDelta(t, tc.vy, v[1], 1e-6)
		})
	}
}

func TestAdjustClampsToLimits(t *testing.T) {
	lp := DefaultLaunchParams()
	for range 200 {
		lp.AdjustAngle(AngleStep)
		lp.AdjustPower(PowerStep)
	}
	assert.Equal(t, float32(MaxAngle), lp.Angle)
	assert.Equal(t, float32(MaxPower), lp.Power)

	for range 200 {
		lp.AdjustAngle(-AngleStep)
		lp.AdjustPower(-PowerStep)
	}
	assert.Equal(t, float32(MinAngle), lp.Angle)
	assert.Equal(t, float32(MinPower), lp.Power)
}

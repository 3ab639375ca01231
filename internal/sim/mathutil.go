package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// sinCos returns sin and cos of an angle given in degrees.
func sinCos(deg float32) (float32, float32) {
	s, c := math.Sincos(float64(mgl32.DegToRad(deg)))
	return float32(s), float32(c)
}

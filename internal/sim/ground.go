package sim

import "github.com/go-gl/mathgl/mgl32"

// Ground is the static box birds land on.
type Ground struct {
	Center      mgl32.Vec2
	HalfExtents mgl32.Vec2
	RestY       float32 // y a colliding bird is snapped to
}

func NewGround() Ground {
	return Ground{
		Center:      mgl32.Vec2{GroundX, GroundY},
		HalfExtents: mgl32.Vec2{GroundHalfW, GroundHalfH},
		RestY:       RestY,
	}
}

// ClosestPoint returns the point of the box nearest to c.
func (g Ground) ClosestPoint(c mgl32.Vec2) mgl32.Vec2 {
	d := c.Sub(g.Center)
	d[0] = mgl32.Clamp(d[0], -g.HalfExtents[0], g.HalfExtents[0])
	d[1] = mgl32.Clamp(d[1], -g.HalfExtents[1], g.HalfExtents[1])
	return g.Center.Add(d)
}

// Touches reports whether a circle at c with radius r penetrates the box.
func (g Ground) Touches(c mgl32.Vec2, r float32) bool {
	return g.ClosestPoint(c).Sub(c).Len() < r
}

// Resolve tests p against the box. On first contact the bird is snapped to
// the resting height, its vertical speed is inverted and halved (and zeroed
// unless it still points down) and its horizontal speed is halved.
// A bird that is already landed only settles: y and vy are pinned, vx kept.
// Without contact, Landed is cleared and nothing else changes.
func (g Ground) Resolve(p *Projectile) bool {
	if !g.Touches(p.Pos, p.Radius) {
		p.Landed = false
		return false
	}
	p.Pos[1] = g.RestY
	if p.Landed {
		p.Vel[1] = 0
		return true
	}
	p.Landed = true
	p.Vel[1] = -p.Vel[1] / 2
	if p.Vel[1] >= 0 {
		p.Vel[1] = 0
	}
	p.Vel[0] /= 2
	return true
}

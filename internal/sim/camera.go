package sim

import "github.com/go-gl/mathgl/mgl32"

// Camera is the orthographic view over the playfield.
type Camera struct {
	Zoom float32 // fraction of the full view volume shown, MinZoom..MaxZoom
	Pan  float32 // horizontal offset in world units
}

func NewCamera() Camera {
	return Camera{Zoom: MaxZoom}
}

func (c *Camera) ZoomIn() {
	c.Zoom = mgl32.Clamp(c.Zoom-ZoomStep, MinZoom, MaxZoom)
	c.Pan = 0
}

func (c *Camera) ZoomOut() {
	c.Zoom = mgl32.Clamp(c.Zoom+ZoomStep, MinZoom, MaxZoom)
	c.Pan = 0
}

// PanBy shifts the view while keeping it inside the playfield width.
func (c *Camera) PanBy(d float32) {
	limit := ViewHalfW * (1 - c.Zoom)
	c.Pan = mgl32.Clamp(c.Pan+d, -limit, limit)
}

// Bounds returns the visible world rectangle.
func (c Camera) Bounds() (left, right, bottom, top float32) {
	return c.Zoom*-ViewHalfW + c.Pan, c.Zoom*ViewHalfW + c.Pan, c.Zoom * -ViewHalfH, c.Zoom * ViewHalfH
}

func (c Camera) Projection() mgl32.Mat4 {
	l, r, b, t := c.Bounds()
	return mgl32.Ortho(l, r, b, t, ViewNear, ViewFar)
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// ViewProjection returns projection * view.
func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

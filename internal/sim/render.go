package sim

import "github.com/go-gl/mathgl/mgl32"

// MeshHandle identifies geometry previously uploaded to a Renderer.
type MeshHandle int

// Renderer is the drawing capability the scene needs from a front-end.
// Geometry is uploaded once; each frame only transforms are supplied.
type Renderer interface {
	UploadMesh(m Mesh) (MeshHandle, error)
	BeginFrame(viewProj mgl32.Mat4)
	Draw(h MeshHandle, model mgl32.Mat4)
}

// transform composes translate * rotate(z, degrees) * scale.
func transform(x, y, deg, sx, sy float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, 0).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(deg))).
		Mul4(mgl32.Scale3D(sx, sy, 1))
}

type placed struct {
	mesh  int
	model mgl32.Mat4
}

// Fixed scenery: the catapult post and its two arms, then the ground slab.
var scenery = []placed{
	{MeshCatapultPost, transform(-5.22, -2.1, 0, 1, 0.6)},
	{MeshCatapultArm, transform(-5.47, -1.25, 45, 1, 0.8)},
	{MeshCatapultArm, transform(-4.99, -1.25, -45, 1, 0.8)},
	{MeshGround, transform(GroundX, GroundDrawY, 0, 1, 1)},
}

var birdParts = [...]int{MeshBird, MeshMouth, MeshLeftEye, MeshRightEye}

package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive selects how a mesh's vertices are assembled.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleFan
	Lines
)

// Mesh is static geometry: xyz positions and one rgb colour per vertex.
type Mesh struct {
	Name      string
	Mode      Primitive
	Positions []float32
	Colors    []float32
}

func (m Mesh) VertexCount() int { return len(m.Positions) / 3 }

// Bounds returns the 2D extent of the mesh in model space.
func (m Mesh) Bounds() (lo, hi mgl32.Vec2) {
	if len(m.Positions) < 3 {
		return
	}
	lo = mgl32.Vec2{m.Positions[0], m.Positions[1]}
	hi = lo
	for i := 3; i+1 < len(m.Positions); i += 3 {
		x, y := m.Positions[i], m.Positions[i+1]
		lo[0], lo[1] = min(lo[0], x), min(lo[1], y)
		hi[0], hi[1] = max(hi[0], x), max(hi[1], y)
	}
	return
}

// Colour returns the colour of the first vertex.
func (m Mesh) Colour() mgl32.Vec3 {
	if len(m.Colors) < 3 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{m.Colors[0], m.Colors[1], m.Colors[2]}
}

func solid(n int, c mgl32.Vec3) []float32 {
	out := make([]float32, 0, n*3)
	for i := 0; i < n; i++ {
		out = append(out, c[0], c[1], c[2])
	}
	return out
}

// RectMesh is an axis-aligned quad of half-size (hw, hh) centred on the origin.
func RectMesh(name string, hw, hh float32, c mgl32.Vec3) Mesh {
	pos := []float32{
		-hw, -hh, 0,
		hw, -hh, 0,
		hw, hh, 0,

		hw, hh, 0,
		-hw, hh, 0,
		-hw, -hh, 0,
	}
	return Mesh{Name: name, Mode: Triangles, Positions: pos, Colors: solid(6, c)}
}

// CircleMesh is a triangle fan rim of the given radius and segment count.
// Each step rotates the previous rim point instead of calling sin/cos per vertex.
func CircleMesh(name string, r float32, segments int, c mgl32.Vec3) Mesh {
	if segments < 3 {
		segments = 3
	}
	theta := 2 * math.Pi / float64(segments)
	cs, sn := float32(math.Cos(theta)), float32(math.Sin(theta))
	x, y := r, float32(0)
	pos := make([]float32, 0, segments*3)
	for i := 0; i < segments; i++ {
		pos = append(pos, x, y, 0)
		x, y = cs*x-sn*y, sn*x+cs*y
	}
	return Mesh{Name: name, Mode: TriangleFan, Positions: pos, Colors: solid(segments, c)}
}

func LineMesh(name string, x0, y0, x1, y1 float32, c mgl32.Vec3) Mesh {
	return Mesh{
		Name:      name,
		Mode:      Lines,
		Positions: []float32{x0, y0, 0, x1, y1, 0},
		Colors:    solid(2, c),
	}
}

func TriangleMesh(name string, a, b, cc mgl32.Vec2, c mgl32.Vec3) Mesh {
	return Mesh{
		Name:      name,
		Mode:      Triangles,
		Positions: []float32{a[0], a[1], 0, b[0], b[1], 0, cc[0], cc[1], 0},
		Colors:    solid(3, c),
	}
}

var (
	colBird   = mgl32.Vec3{1, 0, 0}
	colBlack  = mgl32.Vec3{0, 0, 0}
	colGround = mgl32.Vec3{0.196078, 0.5, 0.196078}
	colWood   = mgl32.Vec3{0.42, 0.28, 0.11}
)

// Sky is the clear colour behind the scene.
var Sky = mgl32.Vec3{0.74902, 0.847059, 0.947059}

// Scene meshes, uploaded once.
const (
	MeshBird = iota
	MeshMouth
	MeshLeftEye
	MeshRightEye
	MeshGround
	MeshCatapultPost
	MeshCatapultArm
	MeshPowerBar
	meshCount
)

// SceneMeshes returns the geometry for every MeshXxx slot.
func SceneMeshes() []Mesh {
	m := make([]Mesh, meshCount)
	m[MeshBird] = CircleMesh("bird", BirdRadius, BirdSegments, colBird)
	m[MeshMouth] = LineMesh("mouth", 0.05, -0.1, -0.05, -0.1, colBlack)
	m[MeshLeftEye] = TriangleMesh("left-eye",
		mgl32.Vec2{-0.15, 0.1}, mgl32.Vec2{0, 0.1}, mgl32.Vec2{-0.075, 0}, colBlack)
	m[MeshRightEye] = TriangleMesh("right-eye",
		mgl32.Vec2{0.15, 0.1}, mgl32.Vec2{0, 0.1}, mgl32.Vec2{0.075, 0}, colBlack)
	m[MeshGround] = RectMesh("ground", GroundHalfW, GroundHalfH, colGround)
	m[MeshCatapultPost] = RectMesh("catapult-post", 0.05, 1, colWood)
	m[MeshCatapultArm] = RectMesh("catapult-arm", 0.05, 0.5, colWood)
	m[MeshPowerBar] = LineMesh("power-bar", 0, 0, 1, 0, colBlack)
	return m
}

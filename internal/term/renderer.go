package term

import (
	"errors"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"catapult/internal/sim"
)

// Renderer rasterises scene meshes onto a tcell screen, one cell per sample.
type Renderer struct {
	screen   tcell.Screen
	meshes   []sim.Mesh
	styles   []tcell.Style
	viewProj mgl32.Mat4
	w, h     int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, viewProj: mgl32.Ident4()}
}

func (r *Renderer) UploadMesh(m sim.Mesh) (sim.MeshHandle, error) {
	if m.VertexCount() == 0 {
		return 0, errors.New("empty mesh")
	}
	if len(m.Colors) != len(m.Positions) {
		return 0, errors.New("colour count does not match vertex count")
	}
	r.meshes = append(r.meshes, m)
	r.styles = append(r.styles, tcell.StyleDefault.Background(rgb(m.Colour())))
	return sim.MeshHandle(len(r.meshes) - 1), nil
}

// BeginFrame clears the screen to the sky colour.
func (r *Renderer) BeginFrame(viewProj mgl32.Mat4) {
	r.viewProj = viewProj
	r.w, r.h = r.screen.Size()
	r.screen.Fill(' ', tcell.StyleDefault.Background(rgb(sim.Sky)))
}

func (r *Renderer) Draw(h sim.MeshHandle, model mgl32.Mat4) {
	if int(h) < 0 || int(h) >= len(r.meshes) {
		return
	}
	m := r.meshes[h]
	style := r.styles[h]
	pts := r.project(m, r.viewProj.Mul4(model))

	switch m.Mode {
	case sim.Triangles:
		for i := 0; i+2 < len(pts); i += 3 {
			r.fillTriangle(pts[i], pts[i+1], pts[i+2], style)
		}
	case sim.TriangleFan:
		for i := 1; i+1 < len(pts); i++ {
			r.fillTriangle(pts[0], pts[i], pts[i+1], style)
		}
		if len(pts) > 2 {
			r.fillTriangle(pts[0], pts[len(pts)-1], pts[1], style)
		}
	case sim.Lines:
		for i := 0; i+1 < len(pts); i += 2 {
			r.line(pts[i], pts[i+1], style)
		}
	}
}

// Present writes the status line over the top row and flushes the frame.
func (r *Renderer) Present(status string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(rgb(sim.Sky))
	x := 0
	for _, ch := range status {
		if x >= r.w {
			break
		}
		r.screen.SetContent(x, 0, ch, nil, style)
		x++
	}
	r.screen.Show()
}

// project maps every vertex from model space to fractional cell coordinates.
func (r *Renderer) project(m sim.Mesh, mvp mgl32.Mat4) []mgl32.Vec2 {
	pts := make([]mgl32.Vec2, m.VertexCount())
	for i := range pts {
		v := mgl32.Vec4{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2], 1}
		c := mvp.Mul4x1(v)
		if c[3] != 0 {
			c = c.Mul(1 / c[3])
		}
		pts[i] = r.toCell(c[0], c[1])
	}
	return pts
}

// toCell maps normalised device coordinates to cell space, y growing down.
func (r *Renderer) toCell(x, y float32) mgl32.Vec2 {
	return mgl32.Vec2{
		(x + 1) / 2 * float32(r.w),
		(1 - y) / 2 * float32(r.h),
	}
}

// fillTriangle paints every cell whose centre lies inside abc.
func (r *Renderer) fillTriangle(a, b, c mgl32.Vec2, style tcell.Style) {
	area := edge(a, b, c)
	if area == 0 {
		return
	}
	x0 := max(0, int(floor(min(a[0], b[0], c[0]))))
	x1 := min(r.w-1, int(floor(max(a[0], b[0], c[0]))))
	y0 := max(0, int(floor(min(a[1], b[1], c[1]))))
	y1 := min(r.h-1, int(floor(max(a[1], b[1], c[1]))))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
			w0, w1, w2 := edge(b, c, p), edge(c, a, p), edge(a, b, p)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// line walks from a to b one cell at a time.
func (r *Renderer) line(a, b mgl32.Vec2, style tcell.Style) {
	d := b.Sub(a)
	steps := int(math.Ceil(float64(max(abs(d[0]), abs(d[1])))))
	if steps == 0 {
		steps = 1
	}
	inc := d.Mul(1 / float32(steps))
	p := a
	for i := 0; i <= steps; i++ {
		x, y := int(floor(p[0])), int(floor(p[1]))
		if x >= 0 && x < r.w && y >= 0 && y < r.h {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
		p = p.Add(inc)
	}
}

func edge(a, b, p mgl32.Vec2) float32 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

func floor(v float32) float32 { return float32(math.Floor(float64(v))) }

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func rgb(c mgl32.Vec3) tcell.Color {
	return tcell.NewRGBColor(channel(c[0]), channel(c[1]), channel(c[2]))
}

func channel(v float32) int32 {
	return int32(math.Round(float64(min(max(v, 0), 1)) * 255))
}

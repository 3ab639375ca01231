//go:build !android

package game

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"catapult/internal/sim"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type glMesh struct {
	vao    uint32
	posVBO uint32
	colVBO uint32
	mode   uint32
	count  int32
}

// Renderer draws uploaded meshes with a single position/colour program.
type Renderer struct {
	prog uint32
	uMVP int32

	meshes   []glMesh
	viewProj mgl32.Mat4
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	r := &Renderer{
		prog:     prog,
		viewProj: mgl32.Ident4(),
	}
	gl.UseProgram(prog)
	r.uMVP = gl.GetUniformLocation(prog, gl.Str("uMVP\x00"))
	return r, nil
}

func (r *Renderer) UploadMesh(m sim.Mesh) (sim.MeshHandle, error) {
	if m.VertexCount() == 0 {
		return 0, errors.New("empty mesh")
	}
	if len(m.Colors) != len(m.Positions) {
		return 0, errors.New("colour count does not match vertex count")
	}

	var gm glMesh
	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	// aPos (vec3)
	gl.GenBuffers(1, &gm.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*4, gl.Ptr(m.Positions), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))

	// aColor (vec3)
	gl.GenBuffers(1, &gm.colVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.colVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Colors)*4, gl.Ptr(m.Colors), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, glOffset(0))

	gl.BindVertexArray(0)

	gm.mode = glMode(m.Mode)
	gm.count = int32(m.VertexCount())
	r.meshes = append(r.meshes, gm)
	return sim.MeshHandle(len(r.meshes) - 1), nil
}

// Viewport follows the framebuffer size; call it before BeginFrame.
func (r *Renderer) Viewport(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
}

func (r *Renderer) BeginFrame(viewProj mgl32.Mat4) {
	r.viewProj = viewProj
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(r.prog)
}

func (r *Renderer) Draw(h sim.MeshHandle, model mgl32.Mat4) {
	if int(h) < 0 || int(h) >= len(r.meshes) {
		return
	}
	gm := r.meshes[h]
	mvp := r.viewProj.Mul4(model)
	gl.UniformMatrix4fv(r.uMVP, 1, false, &mvp[0])
	gl.BindVertexArray(gm.vao)
	gl.DrawArrays(gm.mode, 0, gm.count)
}

func (r *Renderer) Destroy() {
	for _, gm := range r.meshes {
		for _, id := range []uint32{gm.posVBO, gm.colVBO} {
			if id != 0 {
				gl.DeleteBuffers(1, &id)
			}
		}
		if gm.vao != 0 {
			gl.DeleteVertexArrays(1, &gm.vao)
		}
	}
	r.meshes = nil
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

func glMode(p sim.Primitive) uint32 {
	switch p {
	case sim.TriangleFan:
		return gl.TRIANGLE_FAN
	case sim.Lines:
		return gl.LINES
	}
	return gl.TRIANGLES
}

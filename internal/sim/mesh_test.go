package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleMeshRimLiesOnRadius(t *testing.T) {
	m := CircleMesh("c", BirdRadius, BirdSegments, colBird)
	require.Equal(t, BirdSegments, m.VertexCount())
	require.Len(t, m.Colors, len(m.Positions))

	for i := 0; i < m.VertexCount(); i++ {
		v := mgl32.Vec2{m.Positions[3*i], m.Positions[3*i+1]}
		assert.InDelta(t, BirdRadius, v.Len(), 1e-4, "vertex %d", i)
	}
}

func TestRectMeshBounds(t *testing.T) {
	m := RectMesh("r", GroundHalfW, GroundHalfH, colGround)
	assert.Equal(t, 6, m.VertexCount())
	lo, hi := m.Bounds()
	assert.Equal(t, mgl32.Vec2{-GroundHalfW, -GroundHalfH}, lo)
	assert.Equal(t, mgl32.Vec2{GroundHalfW, GroundHalfH}, hi)
	assert.Equal(t, colGround, m.Colour())
}

func TestSceneMeshesFillEverySlot(t *testing.T) {
	meshes := SceneMeshes()
	require.Len(t, meshes, meshCount)
	for i, m := range meshes {
		assert.NotEmpty(t, m.Name, "slot %d", i)
		assert.NotZero(t, m.VertexCount(), m.Name)
	}
	assert.Equal(t, Lines, meshes[MeshPowerBar].Mode)
	assert.Equal(t, TriangleFan, meshes[MeshBird].Mode)
}

package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet-tour/internal/planets"
)

func TestBuildLayout(t *testing.T) {
	s := Build(planets.Default(), DefaultLayout())
	require.Equal(t, 8, s.Count())
	for i, sp := range s.Spheres {
		assert.Equal(t, mgl32.Vec3{0, -1, -float32(i) * 4}, sp.Position, sp.Name)
		assert.Equal(t, i, sp.Planet)
		assert.Equal(t, float32(1), sp.Radius)
	}
	require.NotNil(t, s.Ring)
	assert.Equal(t, s.Spheres[5].Position, s.Ring.Position)
	assert.InDelta(t, math32.Pi/2, s.Ring.Rotation[0], 1e-6)
	assert.Len(t, s.Group.Children, 9)
	assert.InDelta(t, math32.Pi/20, s.Group.Rotation[0], 1e-6)
	assert.Equal(t, float32(50), s.Starfield.Radius)
}

func TestOffset(t *testing.T) {
	s := Build(planets.Default(), DefaultLayout())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, s.Offset(0))
	off := s.Offset(6).Sub(s.Offset(3))
	assert.InDelta(t, 12, off[2], 1e-5)
	assert.InDelta(t, -3*0.65, off[1], 1e-5)
}

func TestWorldBringsPlanetToCamera(t *testing.T) {
	s := Build(planets.Default(), DefaultLayout())
	s.Group.Rotation = mgl32.Vec3{}
	for i, sp := range s.Spheres {
		s.Group.Position = s.Offset(i)
		p := s.World(sp).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
		assert.InDelta(t, 0, p[2], 1e-4, "planet %d should sit at z=0 when focused", i)
	}
}

func TestUpdateRotations(t *testing.T) {
	s := Build(planets.Default(), DefaultLayout())
	s.Update(1)
	assert.InDelta(t, 0.5, s.Spheres[0].Rotation[1], 1e-6)
	assert.InDelta(t, 2*math32.Pi-0.1, s.Spheres[1].Rotation[1], 1e-5, "negative rates wrap")
	assert.InDelta(t, 1.0, s.Spheres[4].Rotation[1], 1e-6)
	assert.InDelta(t, 0.01, s.Starfield.Rotation[1], 1e-6)
	assert.Equal(t, float32(0), s.Ring.Rotation[1])

	for i := 0; i < 100; i++ {
		s.Update(1)
	}
	for _, sp := range s.Spheres {
		assert.GreaterOrEqual(t, sp.Rotation[1], float32(0))
		assert.Less(t, sp.Rotation[1], 2*math32.Pi)
	}
}

func TestRingGeometry(t *testing.T) {
	g := RingGeometry(1.2, 2.0, 64)
	assert.Equal(t, 130, g.VertexCount())
	assert.Equal(t, 128, g.TriangleCount())
	assert.Len(t, g.Normals, len(g.Vertices))
	assert.Len(t, g.Texcoords, g.VertexCount()*2)
	for _, idx := range g.Indices {
		assert.Less(t, int(idx), g.VertexCount())
	}
	for i := 0; i < len(g.Texcoords); i++ {
		assert.GreaterOrEqual(t, g.Texcoords[i], float32(-1e-6))
		assert.LessOrEqual(t, g.Texcoords[i], float32(1+1e-6))
	}
	// first inner vertex on +X
	assert.InDelta(t, 1.2, g.Vertices[0], 1e-6)
	assert.InDelta(t, 0.8, g.Texcoords[0], 1e-6)

	assert.Equal(t, 8, RingGeometry(1, 2, 1).VertexCount())
}

func TestRingGeometryAtSegmentLimit(t *testing.T) {
	g := RingGeometry(1, 2, planets.MaxRingSegments)
	assert.Equal(t, 2*(planets.MaxRingSegments+1), g.VertexCount())
	var top uint16
	for _, idx := range g.Indices {
		top = max(top, idx)
	}
	assert.Equal(t, g.VertexCount()-1, int(top))
	assert.Equal(t, 2*planets.MaxRingSegments, g.TriangleCount())
}

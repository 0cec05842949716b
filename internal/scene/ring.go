package scene

import "github.com/chewxy/math32"

// Geometry is an indexed triangle mesh in flat float arrays, ready for GPU upload.
type Geometry struct {
	Vertices  []float32 // xyz
	Normals   []float32 // xyz
	Texcoords []float32 // uv
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (g Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// RingGeometry builds a flat annulus in the XY plane facing +Z, with one band of
// segments quads between inner and outer. UVs map the outer circle onto the unit square
// so a planar ring texture lines up.
func RingGeometry(inner, outer float32, segments int) Geometry {
	if segments < 3 {
		segments = 3
	}
	var g Geometry
	for _, r := range [2]float32{inner, outer} {
		for i := 0; i <= segments; i++ {
			theta := float32(i) / float32(segments) * 2 * math32.Pi
			x, y := r*math32.Cos(theta), r*math32.Sin(theta)
			g.Vertices = append(g.Vertices, x, y, 0)
			g.Normals = append(g.Normals, 0, 0, 1)
			g.Texcoords = append(g.Texcoords, (x/outer+1)/2, (y/outer+1)/2)
		}
	}
	stride := uint16(segments + 1)
	for i := uint16(0); i < uint16(segments); i++ {
		a := i
		b := i + stride
		c := i + stride + 1
		d := i + 1
		g.Indices = append(g.Indices, a, b, d, b, c, d)
	}
	return g
}

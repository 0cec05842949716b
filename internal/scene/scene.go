package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"planet-tour/internal/planets"
)

// Kind tells the renderer which mesh and material an object uses.
type Kind int

const (
	KindSphere Kind = iota
	KindRing
	KindStarfield
)

// Layout holds the fixed tour geometry. Units are world units; Tilt is radians about X.
type Layout struct {
	Spacing      float32 // distance between planets along -Z
	Radius       float32 // planet sphere radius
	Segments     int     // sphere rings and slices
	RestY        float32 // resting height of every planet
	StartY       float32 // height planets rise from during the entrance
	VerticalStep float32 // container drop per index so the row stays framed
	Tilt         float32 // container rotation about X
}

// DefaultLayout returns the tour's constants.
func DefaultLayout() Layout {
	return Layout{
		Spacing:      4,
		Radius:       1,
		Segments:     32,
		RestY:        -1,
		StartY:       -4,
		VerticalStep: 0.65,
		Tilt:         math32.Pi / 20,
	}
}

// Object is one drawable node. Position and Rotation are relative to its parent
// (the Group for planets and the ring, the world for the starfield).
type Object struct {
	Name     string
	Kind     Kind
	Planet   int // catalog index, -1 for the starfield
	Texture  string
	Radius   float32
	Inner    float32 // ring only
	Segments int
	Opacity  float32
	Position mgl32.Vec3
	Rotation mgl32.Vec3

	rate float32 // radians per second about Y
}

// Group is the single container whose offset decides which planet faces the camera.
type Group struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Children []*Object
}

// Matrix returns the group's local-to-world transform.
func (g *Group) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(g.Position[0], g.Position[1], g.Position[2]).
		Mul4(mgl32.HomogRotate3DX(g.Rotation[0]))
}

// Scene is the assembled tour. Spheres is ordered by catalog index.
type Scene struct {
	Layout    Layout
	Catalog   planets.Catalog
	Group     *Group
	Spheres   []*Object
	Ring      *Object // nil when no planet has a ring
	Starfield *Object
}

// Build creates one sphere per planet at (0, RestY, -index*Spacing), the ring overlay on
// its planet, and the background starfield. Texture loading is not done here; the
// renderer resolves Texture paths when it draws.
func Build(cat planets.Catalog, l Layout) *Scene {
	s := &Scene{
		Layout:  l,
		Catalog: cat,
		Group:   &Group{Rotation: mgl32.Vec3{l.Tilt, 0, 0}},
	}
	for _, p := range cat.Planets {
		sphere := &Object{
			Name:     p.Name,
			Kind:     KindSphere,
			Planet:   p.Index,
			Texture:  p.Texture,
			Radius:   l.Radius,
			Segments: l.Segments,
			Opacity:  1,
			Position: mgl32.Vec3{0, l.RestY, -float32(p.Index) * l.Spacing},
			rate:     p.RotationRate,
		}
		if p.Ring != nil {
			s.Ring = &Object{
				Name:     p.Name + " rings",
				Kind:     KindRing,
				Planet:   p.Index,
				Texture:  p.Ring.Texture,
				Radius:   p.Ring.OuterRadius,
				Inner:    p.Ring.InnerRadius,
				Segments: p.Ring.Segments,
				Opacity:  1,
				Position: sphere.Position,
				Rotation: mgl32.Vec3{math32.Pi / 2, 0, 0},
			}
			s.Group.Children = append(s.Group.Children, s.Ring)
		}
		s.Group.Children = append(s.Group.Children, sphere)
		s.Spheres = append(s.Spheres, sphere)
	}
	sf := cat.Starfield
	s.Starfield = &Object{
		Name:     "starfield",
		Kind:     KindStarfield,
		Planet:   -1,
		Texture:  sf.Texture,
		Radius:   sf.Radius,
		Segments: 64,
		Opacity:  sf.Opacity,
		rate:     sf.RotationRate,
	}
	return s
}

// Count returns the number of planets.
func (s *Scene) Count() int {
	return len(s.Spheres)
}

// Offset returns the container position that brings planet index into view.
func (s *Scene) Offset(index int) mgl32.Vec3 {
	i := float32(index)
	return mgl32.Vec3{0, -i * s.Layout.VerticalStep, i * s.Layout.Spacing}
}

// World returns the object's local-to-world transform.
func (s *Scene) World(o *Object) mgl32.Mat4 {
	local := mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2]).
		Mul4(mgl32.HomogRotate3DY(o.Rotation[1])).
		Mul4(mgl32.HomogRotate3DX(o.Rotation[0]))
	if o.Kind == KindStarfield {
		return local
	}
	return s.Group.Matrix().Mul4(local)
}

// Update advances the per-frame rotations: each planet about its own Y axis at its
// catalog rate, and the starfield at its slow rate. Angles stay in [0, 2π).
func (s *Scene) Update(dt float32) {
	for _, sp := range s.Spheres {
		sp.Rotation[1] = wrapAngle(sp.Rotation[1] + dt*sp.rate)
	}
	s.Starfield.Rotation[1] = wrapAngle(s.Starfield.Rotation[1] + dt*s.Starfield.rate)
}

func wrapAngle(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}

// Package airfoil implements the 2D profile entity consumed by the wing
// assembler: an upper and a lower surface polyline with a tracked chord,
// angle of attack and reference point (the leading edge).
package airfoil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Profile is the capability set the assembler needs from an element.
type Profile interface {
	// Name identifies the element; exporters use it as a file name.
	Name() string

	// Chord is the current chord length.
	Chord() float64

	// AOA is the current angle of attack in degrees, counter-clockwise
	// from the x-axis.
	AOA() float64

	// Origin is the reference point (leading edge) rotations and scaling
	// are applied around.
	Origin() r2.Vec

	// Flip mirrors the profile about the horizontal line through its
	// origin, swapping upper and lower surfaces.
	Flip()

	// Scale scales the profile uniformly about its origin.
	Scale(f float64) error

	// Rotate rotates the profile by deg degrees about its origin.
	Rotate(deg float64)

	// SetAOA rotates the profile so that AOA() == deg.
	SetAOA(deg float64)

	// Translate moves the profile by v.
	Translate(v r2.Vec)

	Upper() []r2.Vec
	Lower() []r2.Vec

	// Points returns the closed outline in export order.
	Points() []r2.Vec
}

// Airfoil is the default Profile implementation.
//
// Both surfaces are stored from the leading edge to the trailing edge.
// The only rotation primitive is Rotate; SetAOA is computed from the
// tracked angle so the recorded angle never drifts from the point cloud.
type Airfoil struct {
	name   string
	upper  []r2.Vec
	lower  []r2.Vec
	origin r2.Vec
	chord  float64
	aoa    float64
}

var _ Profile = (*Airfoil)(nil)

// New creates an airfoil from upper and lower surfaces ordered from the
// leading edge to the trailing edge. The points are copied.
//
// The origin is the leading edge (the first upper point). Chord and angle
// of attack are measured from the origin to the trailing edge, taken as
// the midpoint of the last upper and last lower points.
func New(name string, upper, lower []r2.Vec) (*Airfoil, error) {
	if len(upper) < 2 || len(lower) < 2 {
		return nil, fmt.Errorf("airfoil %q: each surface needs at least 2 points (upper=%d, lower=%d)",
			name, len(upper), len(lower))
	}

	a := &Airfoil{
		name:   name,
		upper:  append([]r2.Vec(nil), upper...),
		lower:  append([]r2.Vec(nil), lower...),
		origin: upper[0],
	}

	te := r2.Scale(0.5, r2.Add(upper[len(upper)-1], lower[len(lower)-1]))
	cv := r2.Sub(te, a.origin)
	a.chord = r2.Norm(cv)
	if a.chord == 0 {
		return nil, fmt.Errorf("airfoil %q: leading and trailing edge coincide", name)
	}
	a.aoa = math.Atan2(cv.Y, cv.X) * 180 / math.Pi

	return a, nil
}

func (a *Airfoil) Name() string   { return a.name }
func (a *Airfoil) Chord() float64 { return a.chord }
func (a *Airfoil) AOA() float64   { return a.aoa }
func (a *Airfoil) Origin() r2.Vec { return a.origin }

// TrailingEdge returns the tip of the chord vector.
func (a *Airfoil) TrailingEdge() r2.Vec {
	return r2.Add(a.origin, ChordVector(a))
}

func (a *Airfoil) Flip() {
	mirror := func(pts []r2.Vec) {
		for i, p := range pts {
			pts[i].Y = 2*a.origin.Y - p.Y
		}
	}
	mirror(a.upper)
	mirror(a.lower)
	a.upper, a.lower = a.lower, a.upper
	a.aoa = -a.aoa
}

func (a *Airfoil) Scale(f float64) error {
	if !(f > 0) || math.IsInf(f, 1) {
		return fmt.Errorf("airfoil %q: scale factor must be positive and finite, got %v", a.name, f)
	}
	scale := func(pts []r2.Vec) {
		for i, p := range pts {
			pts[i] = r2.Add(a.origin, r2.Scale(f, r2.Sub(p, a.origin)))
		}
	}
	scale(a.upper)
	scale(a.lower)
	a.chord *= f
	return nil
}

func (a *Airfoil) Rotate(deg float64) {
	if deg == 0 {
		return
	}
	rot := r2.NewRotation(deg*math.Pi/180, a.origin)
	for i, p := range a.upper {
		a.upper[i] = rot.Rotate(p)
	}
	for i, p := range a.lower {
		a.lower[i] = rot.Rotate(p)
	}
	a.aoa += deg
}

func (a *Airfoil) SetAOA(deg float64) {
	a.Rotate(deg - a.aoa)
}

func (a *Airfoil) Translate(v r2.Vec) {
	for i, p := range a.upper {
		a.upper[i] = r2.Add(p, v)
	}
	for i, p := range a.lower {
		a.lower[i] = r2.Add(p, v)
	}
	a.origin = r2.Add(a.origin, v)
}

func (a *Airfoil) Upper() []r2.Vec { return append([]r2.Vec(nil), a.upper...) }
func (a *Airfoil) Lower() []r2.Vec { return append([]r2.Vec(nil), a.lower...) }

// Points returns the upper surface from the trailing edge to the leading
// edge followed by the lower surface back to the trailing edge. A lower
// leading-edge point equal to the upper one is emitted once.
func (a *Airfoil) Points() []r2.Vec {
	pts := make([]r2.Vec, 0, len(a.upper)+len(a.lower))
	for i := len(a.upper) - 1; i >= 0; i-- {
		pts = append(pts, a.upper[i])
	}
	lower := a.lower
	if lower[0] == a.upper[0] {
		lower = lower[1:]
	}
	return append(pts, lower...)
}

// ChordVector returns the vector from a profile's origin to its trailing
// edge: length Chord(), direction AOA().
func ChordVector(p Profile) r2.Vec {
	rad := p.AOA() * math.Pi / 180
	return r2.Vec{X: p.Chord() * math.Cos(rad), Y: p.Chord() * math.Sin(rad)}
}

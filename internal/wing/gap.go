package wing

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Gap is a spacing between two adjacent elements expressed as fractions
// of a reference chord, in the reference element's rotated frame.
// X runs along the reference chord, Y normal to it.
type Gap struct {
	X float64
	Y float64
}

// DefaultGap is the spacing used when none is given: elements touch
// end to end.
var DefaultGap = r2.Vec{}

// ResolveGap converts a chord-relative gap into an absolute displacement
// by rotating (chord*g.X, chord*g.Y) by aoa degrees.
//
// By convention the reference chord and angle are those of the earlier
// of the two adjacent elements.
func ResolveGap(chord, aoa float64, g Gap) r2.Vec {
	v := r2.Vec{X: chord * g.X, Y: chord * g.Y}
	if aoa == 0 {
		return v
	}
	return r2.NewRotation(aoa*math.Pi/180, r2.Vec{}).Rotate(v)
}

package airfoil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

// diamond is a symmetric 20% thick profile with unit chord.
func diamond(t *testing.T, name string) *Airfoil {
	t.Helper()
	a, err := New(name,
		[]r2.Vec{{X: 0, Y: 0}, {X: 0.5, Y: 0.1}, {X: 1, Y: 0}},
		[]r2.Vec{{X: 0, Y: 0}, {X: 0.5, Y: -0.1}, {X: 1, Y: 0}},
	)
	require.NoError(t, err)
	return a
}

func assertVec(t *testing.T, want, got r2.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
}

func TestNew(t *testing.T) {
	a := diamond(t, "main")

	assert.Equal(t, "main", a.Name())
	assert.InDelta(t, 1.0, a.Chord(), tol)
	assert.InDelta(t, 0.0, a.AOA(), tol)
	assert.Equal(t, r2.Vec{}, a.Origin())
	assertVec(t, r2.Vec{X: 1}, a.TrailingEdge())
}

func TestNewRejectsBadSurfaces(t *testing.T) {
	_, err := New("x", []r2.Vec{{X: 0}}, []r2.Vec{{X: 0}, {X: 1}})
	assert.Error(t, err)

	_, err = New("x", []r2.Vec{{X: 0}, {X: 0}}, []r2.Vec{{X: 0}, {X: 0}})
	assert.Error(t, err, "zero chord")
}

func TestNewCopiesPoints(t *testing.T) {
	upper := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0.1}}
	lower := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: -0.1}}
	a, err := New("x", upper, lower)
	require.NoError(t, err)

	upper[1].Y = 5
	assert.InDelta(t, 0.1, a.Upper()[1].Y, tol)
}

func TestPointsOrder(t *testing.T) {
	a := diamond(t, "main")

	want := []r2.Vec{
		{X: 1, Y: 0}, {X: 0.5, Y: 0.1}, {X: 0, Y: 0},
		{X: 0.5, Y: -0.1}, {X: 1, Y: 0},
	}
	assert.Equal(t, want, a.Points())
}

func TestPointsKeepsDistinctLeadingEdges(t *testing.T) {
	a, err := New("x",
		[]r2.Vec{{X: 0, Y: 0.01}, {X: 1, Y: 0}},
		[]r2.Vec{{X: 0, Y: -0.01}, {X: 1, Y: 0}},
	)
	require.NoError(t, err)
	assert.Len(t, a.Points(), 4)
}

func TestFlip(t *testing.T) {
	a := diamond(t, "main")
	a.SetAOA(10)
	a.Flip()

	assert.InDelta(t, -10.0, a.AOA(), tol)
	assert.InDelta(t, 1.0, a.Chord(), tol)

	// The old lower surface is now on top.
	rad := 10 * math.Pi / 180
	mid := r2.Vec{X: 0.5*math.Cos(rad) + 0.1*math.Sin(rad), Y: -(0.5*math.Sin(rad) - 0.1*math.Cos(rad))}
	assertVec(t, mid, a.Upper()[1])
	assertVec(t, a.TrailingEdge(), r2.Scale(0.5, r2.Add(a.Upper()[2], a.Lower()[2])))
}

func TestScale(t *testing.T) {
	a := diamond(t, "main")
	a.Translate(r2.Vec{X: 2, Y: 1})
	require.NoError(t, a.Scale(0.5))

	assert.InDelta(t, 0.5, a.Chord(), tol)
	assertVec(t, r2.Vec{X: 2, Y: 1}, a.Origin())
	assertVec(t, r2.Vec{X: 2.25, Y: 1.05}, a.Upper()[1])

	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.Error(t, a.Scale(f), "factor %v", f)
	}
	assert.InDelta(t, 0.5, a.Chord(), tol)
}

func TestRotateAndSetAOA(t *testing.T) {
	a := diamond(t, "main")

	a.Rotate(30)
	a.Rotate(15)
	assert.InDelta(t, 45.0, a.AOA(), tol)

	a.SetAOA(-5)
	assert.InDelta(t, -5.0, a.AOA(), tol)

	// The tracked angle must match the point cloud.
	rad := -5 * math.Pi / 180
	assertVec(t, r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}, a.Upper()[2])
	assertVec(t, a.TrailingEdge(), a.Lower()[2])
}

func TestTranslate(t *testing.T) {
	a := diamond(t, "main")
	a.Translate(r2.Vec{X: 1.5, Y: -0.25})

	assertVec(t, r2.Vec{X: 1.5, Y: -0.25}, a.Origin())
	assertVec(t, r2.Vec{X: 2.0, Y: -0.15}, a.Upper()[1])
	assertVec(t, r2.Vec{X: 2.5, Y: -0.25}, a.TrailingEdge())
}

func TestChordVector(t *testing.T) {
	a := diamond(t, "main")
	require.NoError(t, a.Scale(2))
	a.SetAOA(90)

	assertVec(t, r2.Vec{X: 0, Y: 2}, ChordVector(a))
}

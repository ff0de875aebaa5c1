package airfoil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCalculateProperties(t *testing.T) {
	a := diamond(t, "main")
	props := a.CalculateProperties()

	assert.InDelta(t, 0.1, props.Area, tol)
	assert.InDelta(t, 0.5, props.CentroidX, tol)
	assert.InDelta(t, 0.0, props.CentroidY, tol)

	assert.InDelta(t, 0.0, props.MinX, tol)
	assert.InDelta(t, 1.0, props.MaxX, tol)
	assert.InDelta(t, -0.1, props.MinY, tol)
	assert.InDelta(t, 0.1, props.MaxY, tol)

	assert.InDelta(t, 0.2, props.MaxThickness, tol)
	assert.InDelta(t, 0.5, props.MaxThicknessAt, tol)
	assert.InDelta(t, 0.0, props.MaxCamber, tol)
}

func TestPropertiesFollowPlacement(t *testing.T) {
	a := diamond(t, "flap")
	require.NoError(t, a.Scale(0.5))
	a.SetAOA(30)
	a.Translate(r2.Vec{X: 3, Y: 1})

	props := a.CalculateProperties()

	// Area scales with chord squared; thickness ratio is frame independent.
	assert.InDelta(t, 0.025, props.Area, tol)
	assert.InDelta(t, 0.2, props.MaxThickness, 1e-6)

	centroid := r2.Add(a.Origin(), r2.Scale(0.5, ChordVector(a)))
	assert.InDelta(t, centroid.X, props.CentroidX, tol)
	assert.InDelta(t, centroid.Y, props.CentroidY, tol)
}

func TestCamberLine(t *testing.T) {
	cambered, err := New("cambered",
		[]r2.Vec{{X: 0, Y: 0}, {X: 0.5, Y: 0.15}, {X: 1, Y: 0}},
		[]r2.Vec{{X: 0, Y: 0}, {X: 0.5, Y: -0.05}, {X: 1, Y: 0}},
	)
	require.NoError(t, err)

	tests := []struct {
		name    string
		prepare func(a *Airfoil)
		wantMid float64
	}{
		{"as loaded", func(a *Airfoil) {}, 0.05},
		{"rotated and moved", func(a *Airfoil) {
			a.SetAOA(25)
			a.Translate(r2.Vec{X: -1, Y: 2})
		}, 0.05},
		{"flipped", func(a *Airfoil) { a.Flip() }, -0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(cambered.Name(), cambered.Upper(), cambered.Lower())
			require.NoError(t, err)
			tt.prepare(a)

			line, err := a.CamberLine(11)
			require.NoError(t, err)
			require.Len(t, line, 11)

			assert.InDelta(t, 0.0, line[0].X, tol)
			assert.InDelta(t, 1.0, line[10].X, tol)
			assert.InDelta(t, 0.0, line[0].Y, tol)
			assert.InDelta(t, tt.wantMid, line[5].Y, tol)
			assert.InDelta(t, 0.0, line[10].Y, tol)
		})
	}
}

func TestCamberLineNeedsStations(t *testing.T) {
	_, err := diamond(t, "main").CamberLine(1)
	assert.Error(t, err)
}

func TestMaxUpper(t *testing.T) {
	a := diamond(t, "main")
	a.Translate(r2.Vec{X: 1, Y: 1})

	assertVec(t, r2.Vec{X: 1.5, Y: 1.1}, a.MaxUpper())
}

func TestFromLocal(t *testing.T) {
	a := diamond(t, "flap")
	require.NoError(t, a.Scale(0.4))
	a.SetAOA(-20)
	a.Translate(r2.Vec{X: 1, Y: 0.5})

	assertVec(t, a.Origin(), a.FromLocal(r2.Vec{}))
	assertVec(t, a.TrailingEdge(), a.FromLocal(r2.Vec{X: 1}))
	assertVec(t, a.Upper()[1], a.FromLocal(r2.Vec{X: 0.5, Y: 0.1}))
}

package wing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func threeElementWing(t *testing.T) *Wing {
	t.Helper()
	main := element(t, "main", 0.75, -5)
	flap1 := element(t, "flap1", 0.375, 30)
	flap2 := element(t, "flap2", 0.1875, 70)

	gaps := []r2.Vec{
		ResolveGap(flap1.Chord(), main.AOA(), Gap{X: -0.2, Y: 0.05}),
		ResolveGap(flap2.Chord(), flap1.AOA(), Gap{X: -0.2, Y: 0.05}),
	}
	w, err := New("RW", profiles(main, flap1, flap2), gaps)
	require.NoError(t, err)
	return w
}

func TestNormalize(t *testing.T) {
	w := threeElementWing(t)
	chord, aoa := w.TotalChord(), w.TotalAOA()
	elems := w.Elements()
	before := []float64{elems[0].Chord(), elems[1].Chord(), elems[2].Chord()}
	beforeAOA := []float64{elems[0].AOA(), elems[1].AOA(), elems[2].AOA()}
	spacing := r2.Norm(r2.Sub(elems[2].Origin(), elems[1].Origin()))

	require.NoError(t, w.Normalize())

	assert.InDelta(t, 1.0, w.TotalChord(), tol)
	assert.InDelta(t, 0.0, w.TotalAOA(), tol)

	for i, e := range elems {
		assert.InDelta(t, before[i]/chord, e.Chord(), tol, e.Name())
		assert.InDelta(t, beforeAOA[i]-aoa, e.AOA(), tol, e.Name())
	}
	assert.InDelta(t, spacing/chord, r2.Norm(r2.Sub(elems[2].Origin(), elems[1].Origin())), tol)
	assertVec(t, r2.Vec{}, elems[0].Origin())

	// The last trailing edge lands on (1, 0).
	last := elems[2]
	assertVec(t, r2.Vec{X: 1}, r2.Add(last.Origin(), chordVec(last.Chord(), last.AOA())))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	w := threeElementWing(t)
	require.NoError(t, w.Normalize())

	elems := w.Elements()
	origins := make([]r2.Vec, len(elems))
	for i, e := range elems {
		origins[i] = e.Origin()
	}

	require.NoError(t, w.Normalize())

	assert.InDelta(t, 1.0, w.TotalChord(), tol)
	assert.InDelta(t, 0.0, w.TotalAOA(), tol)
	for i, e := range elems {
		assertVec(t, origins[i], e.Origin())
	}
}

func TestNormalizeAroundOffsetOrigin(t *testing.T) {
	main := element(t, "main", 2, 10)
	flap := element(t, "flap", 1, 40)
	main.Translate(r2.Vec{X: 5, Y: 5})
	flap.Translate(r2.Vec{X: 5, Y: 5})

	w, err := New("RW", profiles(main, flap), nil)
	require.NoError(t, err)
	require.NoError(t, w.Normalize())

	assertVec(t, r2.Vec{X: 5, Y: 5}, main.Origin())
	assert.InDelta(t, 1.0, w.TotalChord(), tol)
	assert.InDelta(t, 0.0, w.TotalAOA(), tol)
}

func TestRotateAndScale(t *testing.T) {
	w := threeElementWing(t)
	require.NoError(t, w.Normalize())

	require.NoError(t, w.Rotate(-12))
	assert.InDelta(t, 1.0, w.TotalChord(), tol)
	assert.InDelta(t, -12.0, w.TotalAOA(), tol)

	require.NoError(t, w.Scale(3))
	assert.InDelta(t, 3.0, w.TotalChord(), tol)
	assert.InDelta(t, -12.0, w.TotalAOA(), tol)

	assert.Error(t, w.Scale(0))
	assert.Error(t, w.Scale(-1))
}

func chordVec(chord, aoa float64) r2.Vec {
	return ResolveGap(chord, aoa, Gap{X: 1})
}

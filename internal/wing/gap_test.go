package wing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestResolveGap(t *testing.T) {
	tests := []struct {
		name  string
		chord float64
		aoa   float64
		gap   Gap
		want  r2.Vec
	}{
		{"zero angle", 0.375, 0, Gap{X: -0.2, Y: 0.05}, r2.Vec{X: 0.375 * -0.2, Y: 0.375 * 0.05}},
		{"quarter turn", 2, 90, Gap{X: 0.1, Y: 0.05}, r2.Vec{X: -0.1, Y: 0.2}},
		{"half turn", 1, 180, Gap{X: 0.1, Y: 0}, r2.Vec{X: -0.1, Y: 0}},
		{"negative angle", 1, -90, Gap{X: 0.1, Y: 0}, r2.Vec{X: 0, Y: -0.1}},
		{"zero chord", 0, 35, Gap{X: 0.3, Y: -0.4}, r2.Vec{}},
		{"negative fractions", 1, 0, Gap{X: -0.5, Y: -0.25}, r2.Vec{X: -0.5, Y: -0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveGap(tt.chord, tt.aoa, tt.gap)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}
}

func TestResolveGapZeroAngleIsExact(t *testing.T) {
	chord, g := 0.7318, Gap{X: 0.123456789, Y: -0.987654321}
	got := ResolveGap(chord, 0, g)

	assert.Equal(t, chord*g.X, got.X)
	assert.Equal(t, chord*g.Y, got.Y)
}

func TestResolveGapPreservesLength(t *testing.T) {
	g := Gap{X: 0.3, Y: 0.4}
	for _, aoa := range []float64{-170, -45, 0, 12.5, 89, 181} {
		got := ResolveGap(2, aoa, g)
		assert.InDelta(t, 1.0, r2.Norm(got), 1e-12, "aoa %v", aoa)
	}
}

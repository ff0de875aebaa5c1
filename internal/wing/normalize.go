package wing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Normalize rescales the assembly to unit total chord and rotates it to
// zero total angle of attack about the assembly origin. Relative placement
// is preserved. Totals are re-derived from the element positions, so a
// second call changes nothing beyond rounding.
func (w *Wing) Normalize() error {
	if err := w.transform(1/w.totalChord, -w.totalAOA); err != nil {
		return err
	}
	w.logger.Debug("normalized", "wing", w.name, "chord", w.totalChord, "aoa", w.totalAOA)
	return nil
}

// Rotate turns the whole assembly by deg degrees about its origin.
func (w *Wing) Rotate(deg float64) error {
	return w.transform(1, deg)
}

// Scale resizes the whole assembly by f about its origin.
func (w *Wing) Scale(f float64) error {
	if !(f > 0) || math.IsInf(f, 1) {
		return fmt.Errorf("wing %q: scale factor must be positive and finite, got %v", w.name, f)
	}
	return w.transform(f, 0)
}

// transform applies a similarity (uniform scale f, then rotation by deg)
// about the assembly origin. Profiles only scale and rotate about their
// own origin, so each one is moved back onto the assembly-wide mapping
// with a translation.
func (w *Wing) transform(f, deg float64) error {
	pivot := w.Origin()
	rot := r2.NewRotation(deg*math.Pi/180, pivot)

	for _, e := range w.elements {
		p := e.Origin()

		if f != 1 {
			if err := e.Scale(f); err != nil {
				return err
			}
			target := r2.Add(pivot, r2.Scale(f, r2.Sub(p, pivot)))
			e.Translate(r2.Sub(target, p))
			p = target
		}

		if deg != 0 {
			e.Rotate(deg)
			e.Translate(r2.Sub(rot.Rotate(p), p))
		}
	}

	return w.Recompute()
}

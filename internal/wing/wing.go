// Package wing assembles multi-element aerodynamic surfaces.
//
// A Wing is an ordered list of profiles (main element first, flaps after)
// plus one gap vector per adjacent pair. Construction places every element
// behind the previous one and derives the total chord and total angle of
// attack of the assembly. The assembly can then be normalised to unit
// chord and zero angle of attack and exported as coordinate files for
// meshing tools.
//
// Stages run in a fixed order: New (placement), Normalize (optional),
// Export. Elements are referenced, not copied: callers holding a profile
// observe the in-place transformations.
package wing

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gowing/internal/airfoil"
)

var (
	// ErrNoElements is returned when a wing is built without elements.
	ErrNoElements = errors.New("wing has no elements")

	// ErrGapCount is returned when the gap list length is not one less
	// than the element count.
	ErrGapCount = errors.New("gap count must be one less than element count")

	// ErrDegenerateGeometry is returned when the assembly has zero total
	// chord and therefore no defined angle of attack.
	ErrDegenerateGeometry = errors.New("degenerate geometry: total chord is zero")

	// ErrInvalidName is returned for wing or element names that cannot
	// name an export file, and for duplicate element names.
	ErrInvalidName = errors.New("invalid name")
)

// chordEpsilon is the smallest total chord considered non-degenerate.
const chordEpsilon = 1e-12

// Wing is an assembled multi-element surface.
type Wing struct {
	name     string
	elements []airfoil.Profile
	gaps     []r2.Vec

	totalChord float64
	totalAOA   float64

	logger *log.Logger
}

// Option configures a Wing.
type Option func(*Wing)

// WithLogger sets the logger used for placement diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(w *Wing) {
		if l != nil {
			w.logger = l
		}
	}
}

// New builds a wing from prepared elements and absolute gap vectors and
// places the elements.
//
// A nil gaps slice means DefaultGap between every pair. A non-nil slice
// must hold exactly len(elements)-1 vectors; anything else is rejected
// with ErrGapCount rather than padded.
//
// Elements are expected in their unplaced state, conventionally with the
// leading edge at (0,0). Placement accumulates: building a second Wing
// from already placed elements shifts them again.
func New(name string, elements []airfoil.Profile, gaps []r2.Vec, opts ...Option) (*Wing, error) {
	if len(elements) == 0 {
		return nil, ErrNoElements
	}
	if gaps == nil {
		gaps = make([]r2.Vec, len(elements)-1)
		for i := range gaps {
			gaps[i] = DefaultGap
		}
	}
	if len(gaps) != len(elements)-1 {
		return nil, fmt.Errorf("%w: %d elements, %d gaps", ErrGapCount, len(elements), len(gaps))
	}
	if err := checkElementNames(elements); err != nil {
		return nil, err
	}

	w := &Wing{
		name:     name,
		elements: elements,
		gaps:     append([]r2.Vec(nil), gaps...),
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.place(); err != nil {
		return nil, err
	}
	return w, nil
}

// checkElementNames requires unique names that are safe to export as
// <name>.txt inside the export directory.
func checkElementNames(elements []airfoil.Profile) error {
	seen := make(map[string]bool, len(elements))
	for _, e := range elements {
		name := e.Name()
		if err := checkFileName(name); err != nil {
			return fmt.Errorf("element %q: %w", name, err)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate %q", ErrInvalidName, name)
		}
		seen[name] = true
	}
	return nil
}

// checkFileName rejects names that are empty or would resolve outside
// the export directory.
func checkFileName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	return nil
}

// place translates every element after the first by the running sum of
// the previous chord vectors and gaps, then derives the totals.
func (w *Wing) place() error {
	var offset r2.Vec
	for i := 0; i < len(w.elements)-1; i++ {
		current := w.elements[i]
		offset = r2.Add(offset, r2.Add(airfoil.ChordVector(current), w.gaps[i]))
		w.elements[i+1].Translate(offset)

		w.logger.Debug("placed element",
			"wing", w.name,
			"element", w.elements[i+1].Name(),
			"gap", fmt.Sprintf("(%g, %g)", w.gaps[i].X, w.gaps[i].Y),
			"offset", fmt.Sprintf("(%g, %g)", offset.X, offset.Y))
	}

	last := w.elements[len(w.elements)-1]
	return w.setTotals(r2.Add(offset, airfoil.ChordVector(last)))
}

// setTotals derives chord and angle from the trailing vector v.
func (w *Wing) setTotals(v r2.Vec) error {
	chord := r2.Norm(v)
	if !(chord > chordEpsilon) {
		return fmt.Errorf("wing %q: %w", w.name, ErrDegenerateGeometry)
	}
	w.totalChord = chord
	w.totalAOA = math.Atan2(v.Y, v.X) * 180 / math.Pi

	w.logger.Debug("assembly totals", "wing", w.name, "chord", w.totalChord, "aoa", w.totalAOA)
	return nil
}

// Recompute re-derives the totals from the current element positions:
// the vector from the first element's origin to the trailing edge of the
// last element. Call it after moving elements by hand.
func (w *Wing) Recompute() error {
	first := w.elements[0]
	last := w.elements[len(w.elements)-1]
	v := r2.Sub(r2.Add(last.Origin(), airfoil.ChordVector(last)), first.Origin())
	return w.setTotals(v)
}

func (w *Wing) Name() string { return w.name }

// TotalChord is the length from the assembly origin to the trailing edge
// of the last element.
func (w *Wing) TotalChord() float64 { return w.totalChord }

// TotalAOA is the angle of the total chord vector in degrees.
func (w *Wing) TotalAOA() float64 { return w.totalAOA }

// Elements returns the element list in front-to-back order.
func (w *Wing) Elements() []airfoil.Profile {
	return append([]airfoil.Profile(nil), w.elements...)
}

// Gaps returns the absolute gap vectors used for placement.
func (w *Wing) Gaps() []r2.Vec {
	return append([]r2.Vec(nil), w.gaps...)
}

// Origin is the reference point of the assembly (the first element's
// origin).
func (w *Wing) Origin() r2.Vec {
	return w.elements[0].Origin()
}

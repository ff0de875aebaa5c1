package config

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gowing/internal/airfoil"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// LoadElements reads every profile and prepares it: flip, scale to the
// requested chord, then set the angle of attack. Elements keep their
// leading edge at the file's origin.
func (d *Definition) LoadElements() ([]*airfoil.Airfoil, error) {
	foils := make([]*airfoil.Airfoil, 0, len(d.Elements))
	for _, e := range d.Elements {
		foil, err := airfoil.NewFromFile(d.ProfilePath(e), e.Name, airfoil.LoadOptions{DecimalComma: e.DecimalComma})
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", e.Name, err)
		}

		if e.Flip {
			foil.Flip()
		}
		if e.Chord > 0 {
			if err := foil.Scale(e.Chord / foil.Chord()); err != nil {
				return nil, fmt.Errorf("element %q: %w", e.Name, err)
			}
		}
		foil.SetAOA(e.AOA)

		foils = append(foils, foil)
	}
	return foils, nil
}

// ResolveGaps turns the gap specs into absolute vectors using the
// prepared elements as reference. It returns nil when no gaps are given.
func (d *Definition) ResolveGaps(foils []*airfoil.Airfoil) ([]r2.Vec, error) {
	if len(d.Gaps) == 0 {
		return nil, nil
	}
	if len(d.Gaps) != len(foils)-1 {
		return nil, fmt.Errorf("%w: %d elements, %d gaps", wing.ErrGapCount, len(foils), len(d.Gaps))
	}

	gaps := make([]r2.Vec, len(d.Gaps))
	for i, g := range d.Gaps {
		if g.Absolute {
			gaps[i] = r2.Vec{X: g.X, Y: g.Y}
			continue
		}

		chord, angle := foils[i].Chord(), foils[i].AOA()
		if g.Chord != nil {
			chord = *g.Chord
		}
		if g.Angle != nil {
			angle = *g.Angle
		}
		gaps[i] = wing.ResolveGap(chord, angle, wing.Gap{X: g.X, Y: g.Y})
	}
	return gaps, nil
}

// Assemble validates the definition, loads the elements, places them and
// applies the optional normalisation and rotation.
func (d *Definition) Assemble(opts ...wing.Option) (*wing.Wing, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	foils, err := d.LoadElements()
	if err != nil {
		return nil, err
	}

	elements := make([]airfoil.Profile, len(foils))
	for i, f := range foils {
		elements[i] = f
	}

	gaps, err := d.ResolveGaps(foils)
	if err != nil {
		return nil, err
	}

	w, err := wing.New(d.Name, elements, gaps, opts...)
	if err != nil {
		return nil, err
	}

	if d.Normalize {
		if err := w.Normalize(); err != nil {
			return nil, err
		}
	}
	if d.Rotate != 0 {
		if err := w.Rotate(d.Rotate); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// ExportOptions merges the export section with the defaults.
func (d *Definition) ExportOptions() wing.ExportOptions {
	opts := wing.DefaultExportOptions()
	spec := d.Export

	if spec.Dir != "" {
		opts.Dir = spec.Dir
	}
	if spec.Separator != nil {
		opts.Separator = *spec.Separator
	} else if spec.DecimalComma {
		opts.Separator = "; "
	}
	opts.DecimalComma = spec.DecimalComma
	if spec.IncludeZ != nil {
		opts.IncludeZ = *spec.IncludeZ
	}
	opts.SameFile = spec.SameFile
	if spec.FileSeparator != nil {
		opts.FileSeparator = *spec.FileSeparator
	}
	if spec.Precision != nil {
		opts.Precision = *spec.Precision
	}
	return opts
}

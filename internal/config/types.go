// Package config reads wing definition files.
//
// A definition lists the elements of a wing (profile file, flip, chord,
// angle of attack), the gaps between them, and how the result is exported
// and plotted. JSON, TOML and YAML files are accepted.
package config

import (
	"fmt"
	"strings"
)

// Definition describes a multi-element wing.
type Definition struct {
	Name        string `json:"name" toml:"name" yaml:"name"`
	Description string `json:"description,omitempty" toml:"description" yaml:"description,omitempty"`

	// Normalize scales the assembly to unit chord and zero angle of attack
	Normalize bool `json:"normalize" toml:"normalize" yaml:"normalize"`

	// Rotate turns the assembly (degrees) after normalisation
	Rotate float64 `json:"rotate,omitempty" toml:"rotate" yaml:"rotate,omitempty"`

	// Elements in front-to-back order
	Elements []Element `json:"elements" toml:"elements" yaml:"elements"`

	// Gaps between adjacent elements; empty means zero gaps
	Gaps []GapSpec `json:"gaps,omitempty" toml:"gaps" yaml:"gaps,omitempty"`

	Export ExportSpec `json:"export" toml:"export" yaml:"export"`
	Plot   PlotSpec   `json:"plot" toml:"plot" yaml:"plot"`

	// directory of the definition file, for relative profile paths
	baseDir string
}

// Element is one profile of the wing.
type Element struct {
	Name    string `json:"name" toml:"name" yaml:"name"`
	Profile string `json:"profile" toml:"profile" yaml:"profile"` // coordinate file

	// Chord 0 keeps the file's chord. AOA is in degrees.
	Flip  bool    `json:"flip,omitempty" toml:"flip" yaml:"flip,omitempty"`
	Chord float64 `json:"chord,omitempty" toml:"chord" yaml:"chord,omitempty"`
	AOA   float64 `json:"aoa" toml:"aoa" yaml:"aoa"`

	// DecimalComma reads the profile file with ',' as decimal mark
	DecimalComma bool `json:"decimal_comma,omitempty" toml:"decimal_comma" yaml:"decimal_comma,omitempty"`
}

// GapSpec is the spacing after an element.
//
// By default X and Y are fractions of the preceding element's chord in
// its rotated frame. Chord and Angle override the reference values;
// Absolute takes X and Y as a plain displacement.
type GapSpec struct {
	X float64 `json:"x" toml:"x" yaml:"x"`
	Y float64 `json:"y" toml:"y" yaml:"y"`

	Chord    *float64 `json:"chord,omitempty" toml:"chord" yaml:"chord,omitempty"`
	Angle    *float64 `json:"angle,omitempty" toml:"angle" yaml:"angle,omitempty"`
	Absolute bool     `json:"absolute,omitempty" toml:"absolute" yaml:"absolute,omitempty"`
}

// ExportSpec mirrors wing.ExportOptions. Nil fields take the defaults,
// except that a decimal comma without a separator selects "; ".
type ExportSpec struct {
	Dir           string  `json:"dir,omitempty" toml:"dir" yaml:"dir,omitempty"`
	Separator     *string `json:"separator,omitempty" toml:"separator" yaml:"separator,omitempty"`
	DecimalComma  bool    `json:"decimal_comma,omitempty" toml:"decimal_comma" yaml:"decimal_comma,omitempty"`
	IncludeZ      *bool   `json:"z,omitempty" toml:"z" yaml:"z,omitempty"`
	SameFile      bool    `json:"same_file,omitempty" toml:"same_file" yaml:"same_file,omitempty"`
	FileSeparator *string `json:"file_separator,omitempty" toml:"file_separator" yaml:"file_separator,omitempty"`
	Precision     *int    `json:"precision,omitempty" toml:"precision" yaml:"precision,omitempty"`
}

// PlotSpec controls the optional diagram export. File may end in .png,
// .svg or .pdf.
type PlotSpec struct {
	File   string `json:"file,omitempty" toml:"file" yaml:"file,omitempty"`
	Points bool   `json:"points,omitempty" toml:"points" yaml:"points,omitempty"`
	Camber bool   `json:"camber,omitempty" toml:"camber" yaml:"camber,omitempty"`
}

// Validate checks if the definition is valid
func (d *Definition) Validate() error {
	if d.Name == "" {
		return &ValidationError{msg: "wing must have a name"}
	}
	if len(d.Elements) == 0 {
		return &ValidationError{msg: "wing must have at least one element"}
	}

	seen := make(map[string]bool, len(d.Elements))
	for i, e := range d.Elements {
		if e.Name == "" {
			return &ValidationError{msg: fmt.Sprintf("element %d must have a name", i+1)}
		}
		if !isFileName(e.Name) {
			return &ValidationError{msg: fmt.Sprintf("element name %q cannot be used as a file name", e.Name)}
		}
		if seen[e.Name] {
			return &ValidationError{msg: fmt.Sprintf("duplicate element name %q", e.Name)}
		}
		seen[e.Name] = true
		if e.Profile == "" {
			return &ValidationError{msg: fmt.Sprintf("element %q must reference a profile file", e.Name)}
		}
		if e.Chord < 0 {
			return &ValidationError{msg: fmt.Sprintf("element %q chord must not be negative", e.Name)}
		}
	}

	if len(d.Gaps) != 0 && len(d.Gaps) != len(d.Elements)-1 {
		return &ValidationError{msg: fmt.Sprintf("expected %d gaps for %d elements, got %d",
			len(d.Elements)-1, len(d.Elements), len(d.Gaps))}
	}
	for i, g := range d.Gaps {
		if g.Chord != nil && *g.Chord < 0 {
			return &ValidationError{msg: fmt.Sprintf("gap %d reference chord must not be negative", i+1)}
		}
	}

	if d.Export.SameFile && !isFileName(d.Name) {
		return &ValidationError{msg: fmt.Sprintf("wing name %q cannot be used as a file name", d.Name)}
	}
	if sep := d.Export.Separator; d.Export.DecimalComma && sep != nil && strings.Contains(*sep, ",") {
		return &ValidationError{msg: fmt.Sprintf("separator %q contains ',' which is the decimal mark", *sep)}
	}
	if p := d.Export.Precision; p != nil && *p < -1 {
		return &ValidationError{msg: fmt.Sprintf("export precision must be -1 or more, got %d", *p)}
	}
	return nil
}

// isFileName reports whether name can be exported as <name>.txt without
// leaving the export directory.
func isFileName(name string) bool {
	return name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// ValidationError represents a definition validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

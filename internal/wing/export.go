package wing

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gowing/internal/airfoil"
)

// ErrSeparatorConflict is returned when a decimal comma is combined with a
// separator containing a comma; such files cannot be read back.
var ErrSeparatorConflict = errors.New("separator must not contain ',' when decimal comma is enabled")

// ExportOptions controls the coordinate file format.
type ExportOptions struct {
	// Separator joins the coordinates of one point.
	Separator string

	// DecimalComma writes ',' as the decimal mark.
	DecimalComma bool

	// IncludeZ appends a zero z coordinate to every point.
	IncludeZ bool

	// Dir is the destination directory, created if missing.
	Dir string

	// SameFile writes every element into <Dir>/<wing name>.txt instead of
	// one <Dir>/<element name>.txt per element.
	SameFile bool

	// FileSeparator goes between element blocks in SameFile mode. It is
	// not written after the last block.
	FileSeparator string

	// Precision is the number of decimals. Negative values use the
	// shortest representation that parses back to the same float64.
	Precision int
}

// DefaultExportOptions returns the default format: ", " separated,
// decimal point, zero z column, one file per element in the working
// directory, blank-line block separator.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Separator:     ", ",
		DecimalComma:  false,
		IncludeZ:      true,
		Dir:           ".",
		SameFile:      false,
		FileSeparator: "\n\n",
		Precision:     -1,
	}
}

// Validate reports option combinations that would produce unreadable files.
func (o ExportOptions) Validate() error {
	if o.DecimalComma && strings.Contains(o.Separator, ",") {
		return fmt.Errorf("%w (separator %q)", ErrSeparatorConflict, o.Separator)
	}
	return nil
}

// Export writes the coordinate files and returns the written content:
// all element blocks joined by FileSeparator. The wing is not modified.
// Files written before a failure are left in place.
func (w *Wing) Export(opts ExportOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if opts.SameFile {
		if err := checkFileName(w.name); err != nil {
			return "", fmt.Errorf("wing %q: %w", w.name, err)
		}
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	blocks := make([]string, 0, len(w.elements))
	for _, e := range w.elements {
		block, err := FormatProfile(e, opts)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)

		if !opts.SameFile {
			path := filepath.Join(dir, e.Name()+".txt")
			if err := os.WriteFile(path, []byte(block), 0644); err != nil {
				return "", fmt.Errorf("exporting element %q: %w", e.Name(), err)
			}
			w.logger.Debug("exported element", "element", e.Name(), "path", path)
		}
	}

	result := strings.Join(blocks, opts.FileSeparator)

	if opts.SameFile {
		path := filepath.Join(dir, w.name+".txt")
		if err := os.WriteFile(path, []byte(result), 0644); err != nil {
			return "", fmt.Errorf("exporting wing %q: %w", w.name, err)
		}
		w.logger.Debug("exported wing", "wing", w.name, "path", path)
	}

	return result, nil
}

// FormatProfile encodes one element, one point per line in the order
// given by Points.
func FormatProfile(p airfoil.Profile, opts ExportOptions) (string, error) {
	var sb strings.Builder
	if err := WriteProfile(&sb, p, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteProfile writes the encoding of p to w.
func WriteProfile(w io.Writer, p airfoil.Profile, opts ExportOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	for _, pt := range p.Points() {
		fields := []string{formatFloat(pt.X, opts), formatFloat(pt.Y, opts)}
		if opts.IncludeZ {
			fields = append(fields, formatFloat(0, opts))
		}
		if _, err := io.WriteString(w, strings.Join(fields, opts.Separator)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64, opts ExportOptions) string {
	s := strconv.FormatFloat(v, 'f', opts.Precision, 64)
	if opts.DecimalComma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

package airfoil

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/spatial/r2"
)

// LoadOptions controls how coordinate files are tokenised.
type LoadOptions struct {
	// DecimalComma treats ',' as the decimal mark. Fields are then only
	// separated by whitespace and ';'.
	DecimalComma bool
}

// ParseError reports a malformed coordinate file.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// Load reads a profile coordinate file and returns its upper and lower
// surfaces, each ordered from the leading edge to the trailing edge.
func Load(path string, opts LoadOptions) (upper, lower []r2.Vec, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return Parse(f, path, opts)
}

// NewFromFile loads a coordinate file and builds an Airfoil named name.
func NewFromFile(path, name string, opts LoadOptions) (*Airfoil, error) {
	upper, lower, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	return New(name, upper, lower)
}

// Parse reads coordinates from r. Two layouts are recognised:
//
//   - Selig: an optional title line, then one closed loop running from
//     the trailing edge over the upper surface to the leading edge and
//     back along the lower surface.
//   - Lednicer: a title line, a line holding the upper and lower point
//     counts (e.g. "61. 61."), then the upper and lower surfaces each
//     from the leading edge to the trailing edge.
//
// Blank lines are skipped and a third (z) column is ignored. Any other
// line with fewer than two columns or a non-numeric field is an error.
func Parse(r io.Reader, path string, opts LoadOptions) (upper, lower []r2.Vec, err error) {
	var (
		pts      []r2.Vec
		sawData  bool
		sawTitle bool
		lineNo   int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		p, perr := parsePoint(line, opts)
		if perr != nil {
			if !sawData && !sawTitle {
				sawTitle = true
				continue
			}
			return nil, nil, &ParseError{Path: path, Line: lineNo, Msg: perr.Error()}
		}
		sawData = true
		pts = append(pts, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(pts) > 0 && isLednicerHeader(pts[0]) {
		return splitLednicer(pts, path)
	}
	return splitSelig(pts, path)
}

func parsePoint(line string, opts LoadOptions) (r2.Vec, error) {
	sep := func(c rune) bool {
		return unicode.IsSpace(c) || c == ';' || (!opts.DecimalComma && c == ',')
	}
	fields := strings.FieldsFunc(line, sep)
	if len(fields) < 2 {
		return r2.Vec{}, fmt.Errorf("expected at least 2 columns, got %d", len(fields))
	}

	var xy [2]float64
	for i := range xy {
		s := fields[i]
		if opts.DecimalComma {
			s = strings.Replace(s, ",", ".", 1)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return r2.Vec{}, fmt.Errorf("non-numeric field %q", fields[i])
		}
		xy[i] = v
	}
	return r2.Vec{X: xy[0], Y: xy[1]}, nil
}

// isLednicerHeader reports whether p looks like a point-count line.
// Normalised coordinates never exceed 1 on both axes.
func isLednicerHeader(p r2.Vec) bool {
	return p.X >= 2 && p.Y >= 2 && p.X == math.Trunc(p.X) && p.Y == math.Trunc(p.Y)
}

func splitLednicer(pts []r2.Vec, path string) (upper, lower []r2.Vec, err error) {
	nu, nl := int(pts[0].X), int(pts[0].Y)
	body := pts[1:]
	if len(body) != nu+nl {
		return nil, nil, &ParseError{Path: path,
			Msg: fmt.Sprintf("header declares %d+%d points, found %d", nu, nl, len(body))}
	}
	return body[:nu:nu], body[nu:], nil
}

// splitSelig cuts the loop at the point farthest from the trailing edge
// (the midpoint of the first and last points). The leading edge is shared
// by both surfaces.
func splitSelig(pts []r2.Vec, path string) (upper, lower []r2.Vec, err error) {
	if len(pts) < 3 {
		return nil, nil, &ParseError{Path: path, Msg: fmt.Sprintf("need at least 3 points, got %d", len(pts))}
	}

	te := r2.Scale(0.5, r2.Add(pts[0], pts[len(pts)-1]))
	le, best := 0, -1.0
	for i, p := range pts {
		if d := r2.Norm2(r2.Sub(p, te)); d > best {
			le, best = i, d
		}
	}
	if le == 0 || le == len(pts)-1 {
		return nil, nil, &ParseError{Path: path, Msg: "cannot locate leading edge: outline is not a closed loop"}
	}

	upper = make([]r2.Vec, 0, le+1)
	for i := le; i >= 0; i-- {
		upper = append(upper, pts[i])
	}
	lower = append([]r2.Vec(nil), pts[le:]...)
	return upper, lower, nil
}

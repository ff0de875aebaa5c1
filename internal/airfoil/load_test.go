package airfoil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

const seligDiamond = `DIAMOND 20%
1.0  0.0
0.5  0.1
0.0  0.0
0.5 -0.1
1.0  0.0
`

const lednicerDiamond = `DIAMOND 20% (Lednicer)
3. 3.

0.0  0.0
0.5  0.1
1.0  0.0

0.0  0.0
0.5 -0.1
1.0  0.0
`

func TestParseSelig(t *testing.T) {
	upper, lower, err := Parse(strings.NewReader(seligDiamond), "diamond.dat", LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []r2.Vec{{X: 0, Y: 0}, {X: 0.5, Y: 0.1}, {X: 1, Y: 0}}, upper)
	assert.Equal(t, []r2.Vec{{X: 0, Y: 0}, {X: 0.5, Y: -0.1}, {X: 1, Y: 0}}, lower)
}

func TestParseLednicer(t *testing.T) {
	upper, lower, err := Parse(strings.NewReader(lednicerDiamond), "diamond.dat", LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []r2.Vec{{X: 0, Y: 0}, {X: 0.5, Y: 0.1}, {X: 1, Y: 0}}, upper)
	assert.Equal(t, []r2.Vec{{X: 0, Y: 0}, {X: 0.5, Y: -0.1}, {X: 1, Y: 0}}, lower)
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  LoadOptions
	}{
		{"no title", "1 0\n0.5 0.1\n0 0\n0.5 -0.1\n1 0\n", LoadOptions{}},
		{"comma separated with z", "1, 0, 0\n0.5, 0.1, 0\n0, 0, 0\n0.5, -0.1, 0\n1, 0, 0\n", LoadOptions{}},
		{"tabs and blank lines", "title\n\n1\t0\n0.5\t0.1\n\n0\t0\n0.5\t-0.1\n1\t0\n\n", LoadOptions{}},
		{"decimal comma", "1\t0\n0,5\t0,1\n0\t0\n0,5\t-0,1\n1\t0\n", LoadOptions{DecimalComma: true}},
		{"semicolons", "1;0\n0.5;0.1\n0;0\n0.5;-0.1\n1;0\n", LoadOptions{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upper, lower, err := Parse(strings.NewReader(tt.input), "test", tt.opts)
			require.NoError(t, err)
			assert.Equal(t, []r2.Vec{{X: 0, Y: 0}, {X: 0.5, Y: 0.1}, {X: 1, Y: 0}}, upper)
			assert.Equal(t, []r2.Vec{{X: 0, Y: 0}, {X: 0.5, Y: -0.1}, {X: 1, Y: 0}}, lower)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"single column", "title\n1 0\n0.5\n0 0\n", 3},
		{"non-numeric field", "1 0\n0.5 abc\n0 0\n", 2},
		{"second title line", "title\nsubtitle\n1 0\n", 2},
		{"nan", "1 0\nNaN 0\n0 0\n", 2},
		{"too few points", "title\n1 0\n0 0\n", 0},
		{"lednicer count mismatch", "title\n3. 3.\n0 0\n1 0\n", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(strings.NewReader(tt.input), "bad.dat", LoadOptions{})
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "want *ParseError, got %T", err)
			assert.Equal(t, "bad.dat", perr.Path)
			assert.Equal(t, tt.wantLine, perr.Line)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Path: "a.dat", Line: 4, Msg: "boom"}
	assert.Equal(t, "a.dat:4: boom", err.Error())

	err = &ParseError{Path: "a.dat", Msg: "boom"}
	assert.Equal(t, "a.dat: boom", err.Error())
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diamond.dat")
	require.NoError(t, os.WriteFile(path, []byte(seligDiamond), 0644))

	a, err := NewFromFile(path, "main", LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "main", a.Name())
	assert.InDelta(t, 1.0, a.Chord(), tol)

	_, err = NewFromFile(filepath.Join(t.TempDir(), "missing.dat"), "main", LoadOptions{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

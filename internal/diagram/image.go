package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	upperColor  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	lowerColor  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	camberColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	pointColor  = color.Gray{Y: 128}
)

// ExportWingDiagram exports the assembled wing outline to an image file.
// The format follows the extension (.png, .svg, .pdf); anything else is
// saved as png with the extension appended.
func ExportWingDiagram(data WingDiagramData, filename string) error {
	p, err := newWingPlot(data)
	if err != nil {
		return err
	}

	width := 10 * vg.Inch
	height := 5 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating diagram directory: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// newWingPlot builds the plot: upper surfaces in blue, lower surfaces in
// green, optional points and camber lines, and the total chord line.
func newWingPlot(data WingDiagramData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Wing Assembly"
	if data.Name != "" {
		p.Title.Text = fmt.Sprintf("Wing Assembly: %s", data.Name)
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for _, e := range data.Elements {
		upper, err := plotter.NewLine(toXYs(e.Upper))
		if err != nil {
			return nil, fmt.Errorf("element %q upper surface: %w", e.Name, err)
		}
		upper.LineStyle.Width = vg.Points(1.5)
		upper.LineStyle.Color = upperColor
		p.Add(upper)

		lower, err := plotter.NewLine(toXYs(e.Lower))
		if err != nil {
			return nil, fmt.Errorf("element %q lower surface: %w", e.Name, err)
		}
		lower.LineStyle.Width = vg.Points(1.5)
		lower.LineStyle.Color = lowerColor
		p.Add(lower)

		if data.ShowPoints {
			pts, err := plotter.NewScatter(toXYs(append(append([]Point(nil), e.Upper...), e.Lower...)))
			if err != nil {
				return nil, err
			}
			pts.GlyphStyle.Color = pointColor
			pts.GlyphStyle.Radius = vg.Points(1.5)
			pts.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(pts)
		}

		if data.ShowCamber && len(e.Camber) > 1 {
			camber, err := plotter.NewLine(toXYs(e.Camber))
			if err != nil {
				return nil, err
			}
			camber.LineStyle.Color = camberColor
			camber.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			p.Add(camber)
		}

		// Label each element at its leading edge
		if len(e.Upper) > 0 {
			lbl, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{{X: e.Upper[0].X, Y: e.Upper[0].Y}},
				Labels: []string{e.Name},
			})
			if err != nil {
				return nil, err
			}
			p.Add(lbl)
		}
	}

	if data.TotalChord > 0 {
		rad := data.TotalAOA * math.Pi / 180
		chord, err := plotter.NewLine(plotter.XYs{
			{X: data.Origin.X, Y: data.Origin.Y},
			{X: data.Origin.X + data.TotalChord*math.Cos(rad), Y: data.Origin.Y + data.TotalChord*math.Sin(rad)},
		})
		if err != nil {
			return nil, err
		}
		chord.LineStyle.Width = vg.Points(1)
		chord.LineStyle.Color = color.Black
		chord.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(chord)
		p.Legend.Add(fmt.Sprintf("c=%.4f, α=%.2f°", data.TotalChord, data.TotalAOA), chord)
	}

	// Equal axis scaling so the profiles are not distorted
	equalAxes(p)

	return p, nil
}

// equalAxes widens the shorter axis range so one unit spans the same
// length on both axes for the 2:1 canvas used by ExportWingDiagram.
func equalAxes(p *plot.Plot) {
	spanX := p.X.Max - p.X.Min
	spanY := p.Y.Max - p.Y.Min
	if spanX <= 0 || spanY <= 0 {
		return
	}

	if spanX/2 > spanY {
		mid := (p.Y.Max + p.Y.Min) / 2
		p.Y.Min, p.Y.Max = mid-spanX/4, mid+spanX/4
	} else {
		mid := (p.X.Max + p.X.Min) / 2
		p.X.Min, p.X.Max = mid-spanY, mid+spanY
	}
}

func toXYs(pts []Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, v := range pts {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return xys
}

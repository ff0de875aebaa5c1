package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Point represents a 2D coordinate of an outline
type Point struct {
	X float64
	Y float64
}

// ElementOutline holds the drawable geometry of one wing element
type ElementOutline struct {
	Name string

	// Surfaces from leading edge to trailing edge, absolute coordinates
	Upper []Point
	Lower []Point

	// Mean line in absolute coordinates (optional)
	Camber []Point
}

// WingDiagramData holds data for drawing an assembled wing
type WingDiagramData struct {
	Name     string
	Elements []ElementOutline

	// Assembly origin and totals; the total chord line is drawn from
	// Origin at TotalAOA
	Origin     Point
	TotalChord float64
	TotalAOA   float64 // degrees

	// Options
	ShowPoints bool
	ShowCamber bool
}

// markers cycles through elements in the ASCII view
var markers = []rune{'█', '▓', '▒', '░', '#', '*'}

// DrawASCIIWing rasterises the wing outline on a width x height grid
func DrawASCIIWing(data WingDiagramData, width, height int) string {
	var sb strings.Builder

	if width < 10 {
		width = 10
	}
	if height < 5 {
		height = 5
	}

	minX, maxX, minY, maxY, ok := bounds(data)
	if !ok {
		return "  (no geometry)\n"
	}

	// Keep the aspect ratio: terminal cells are roughly twice as tall as wide
	spanX := math.Max(maxX-minX, 1e-9)
	spanY := math.Max(maxY-minY, 1e-9)
	scale := math.Min(float64(width-1)/spanX, 2*float64(height-1)/spanY)

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	plot := func(p Point, r rune) {
		col := int(math.Round((p.X - minX) * scale))
		row := height - 1 - int(math.Round((p.Y-minY)*scale/2))
		if row >= 0 && row < height && col >= 0 && col < width {
			grid[row][col] = r
		}
	}
	line := func(a, b Point, r rune) {
		steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)) * scale))
		if steps < 1 {
			steps = 1
		}
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			plot(Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}, r)
		}
	}
	polyline := func(pts []Point, r rune) {
		for i := 1; i < len(pts); i++ {
			line(pts[i-1], pts[i], r)
		}
	}

	// Total chord line first so outlines draw over it
	if data.TotalChord > 0 {
		rad := data.TotalAOA * math.Pi / 180
		end := Point{X: data.Origin.X + data.TotalChord*math.Cos(rad), Y: data.Origin.Y + data.TotalChord*math.Sin(rad)}
		line(data.Origin, end, '·')
	}

	for i, e := range data.Elements {
		r := markers[i%len(markers)]
		polyline(e.Upper, r)
		polyline(e.Lower, r)
		if data.ShowCamber {
			polyline(e.Camber, '-')
		}
	}

	sb.WriteString("\n")
	if data.Name != "" {
		sb.WriteString(fmt.Sprintf("  WING %s\n", data.Name))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len(data.Name)+5)))
	}
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", width)))
	for _, row := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", width)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	for i, e := range data.Elements {
		sb.WriteString(fmt.Sprintf("  %c = %s\n", markers[i%len(markers)], e.Name))
	}
	if data.TotalChord > 0 {
		sb.WriteString(fmt.Sprintf("  · = total chord %.4f at %.2f°\n", data.TotalChord, data.TotalAOA))
	}

	return sb.String()
}

// bounds returns the bounding box of every outline point
func bounds(data WingDiagramData) (minX, maxX, minY, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	for _, e := range data.Elements {
		for _, pts := range [][]Point{e.Upper, e.Lower} {
			for _, p := range pts {
				minX = math.Min(minX, p.X)
				maxX = math.Max(maxX, p.X)
				minY = math.Min(minY, p.Y)
				maxY = math.Max(maxY, p.Y)
				ok = true
			}
		}
	}
	return minX, maxX, minY, maxY, ok
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}

	border := strings.Repeat("═", maxLen+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

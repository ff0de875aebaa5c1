package airfoil

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/spatial/r2"
)

// Properties holds geometric properties of an airfoil outline in its
// current (placed) position.
type Properties struct {
	// Enclosed area of the closed outline
	Area float64

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Thickness relative to chord and its chordwise station (0..1)
	MaxThickness   float64
	MaxThicknessAt float64

	// Camber relative to chord and its chordwise station (0..1)
	MaxCamber   float64
	MaxCamberAt float64
}

// CalculateProperties computes the geometric properties of the outline
func (a *Airfoil) CalculateProperties() *Properties {
	props := &Properties{}
	pts := a.Points()

	props.MinX, props.MaxX = pts[0].X, pts[0].X
	props.MinY, props.MaxY = pts[0].Y, pts[0].Y
	for _, p := range pts {
		props.MinX = math.Min(props.MinX, p.X)
		props.MaxX = math.Max(props.MaxX, p.X)
		props.MinY = math.Min(props.MinY, p.Y)
		props.MaxY = math.Max(props.MaxY, p.Y)
	}

	props.Area, props.CentroidX, props.CentroidY = areaAndCentroid(pts)

	stations := 201
	if thick, err := a.ThicknessLine(stations); err == nil {
		for _, t := range thick {
			if t.Y > props.MaxThickness {
				props.MaxThickness, props.MaxThicknessAt = t.Y, t.X
			}
		}
	}
	if camber, err := a.CamberLine(stations); err == nil {
		for _, c := range camber {
			if math.Abs(c.Y) > math.Abs(props.MaxCamber) {
				props.MaxCamber, props.MaxCamberAt = c.Y, c.X
			}
		}
	}

	return props
}

// areaAndCentroid uses the shoelace formula over the closed outline
func areaAndCentroid(pts []r2.Vec) (area, cx, cy float64) {
	n := len(pts)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		signedArea += cross
		sumX += (pts[i].X + pts[j].X) * cross
		sumY += (pts[i].Y + pts[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// MaxUpper returns the highest point of the upper surface in absolute
// coordinates.
func (a *Airfoil) MaxUpper() r2.Vec {
	best := a.upper[0]
	for _, p := range a.upper[1:] {
		if p.Y > best.Y {
			best = p
		}
	}
	return best
}

// CamberLine samples the mean line at n evenly spaced chordwise stations.
// Results are in the airfoil's own frame normalised by chord: x runs from
// 0 (leading edge) to 1 (trailing edge).
func (a *Airfoil) CamberLine(n int) ([]r2.Vec, error) {
	return a.sampleSurfaces(n, func(yu, yl float64) float64 { return (yu + yl) / 2 })
}

// ThicknessLine samples the upper minus lower distance, normalised by
// chord, at n evenly spaced chordwise stations.
func (a *Airfoil) ThicknessLine(n int) ([]r2.Vec, error) {
	return a.sampleSurfaces(n, func(yu, yl float64) float64 { return yu - yl })
}

func (a *Airfoil) sampleSurfaces(n int, f func(yu, yl float64) float64) ([]r2.Vec, error) {
	if n < 2 {
		return nil, fmt.Errorf("airfoil %q: need at least 2 stations, got %d", a.name, n)
	}

	var upper, lower interp.PiecewiseLinear
	if err := fitSurface(&upper, a.local(a.upper)); err != nil {
		return nil, fmt.Errorf("airfoil %q: upper surface: %w", a.name, err)
	}
	if err := fitSurface(&lower, a.local(a.lower)); err != nil {
		return nil, fmt.Errorf("airfoil %q: lower surface: %w", a.name, err)
	}

	out := make([]r2.Vec, n)
	for i := range out {
		x := float64(i) / float64(n-1)
		out[i] = r2.Vec{X: x, Y: f(upper.Predict(x), lower.Predict(x))}
	}
	return out, nil
}

// local maps absolute points into the frame where the origin is (0,0),
// the chord lies on the x-axis and has unit length.
func (a *Airfoil) local(pts []r2.Vec) []r2.Vec {
	rot := r2.NewRotation(-a.aoa*math.Pi/180, r2.Vec{})
	out := make([]r2.Vec, len(pts))
	for i, p := range pts {
		out[i] = r2.Scale(1/a.chord, rot.Rotate(r2.Sub(p, a.origin)))
	}
	return out
}

// FromLocal maps a point from the normalised element frame used by
// CamberLine and ThicknessLine back to absolute coordinates.
func (a *Airfoil) FromLocal(p r2.Vec) r2.Vec {
	rot := r2.NewRotation(a.aoa*math.Pi/180, r2.Vec{})
	return r2.Add(a.origin, rot.Rotate(r2.Scale(a.chord, p)))
}

// fitSurface fits y(x). Abscissae are sorted and duplicates dropped since
// the interpolator needs strictly increasing x.
func fitSurface(pl *interp.PiecewiseLinear, pts []r2.Vec) error {
	sorted := append([]r2.Vec(nil), pts...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	xs := make([]float64, 0, len(sorted))
	ys := make([]float64, 0, len(sorted))
	for _, p := range sorted {
		if len(xs) > 0 && p.X <= xs[len(xs)-1] {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	return pl.Fit(xs, ys)
}

package sample

import (
	"math"
	"sort"

	"github.com/gogpu/plotview"
)

// CullThreshold is the series length above which VisibleSlice culls.
const CullThreshold = 1000

// VisibleSlice returns the part of points, sorted by X, that can reach
// the x range [xmin, xmax], keeping one neighbour on each side so lines
// entering and leaving the view are drawn. Series of at most
// CullThreshold points are returned whole.
func VisibleSlice(points []plotview.Point, xmin, xmax float64) []plotview.Point {
	n := len(points)
	if n <= CullThreshold {
		return points
	}
	first := sort.Search(n, func(i int) bool { return points[i].X >= xmin })
	first = min(first, n-1)
	start := max(0, first-1)

	last := sort.Search(n, func(i int) bool { return points[i].X > xmax }) - 1
	last = max(last, 0)
	end := min(n-1, last+1)

	if start > end {
		start, end = end, start
	}
	return points[start : end+1]
}

// LineWidth converts a stroke width in pixels into data units for m, so
// that a line stroked under m keeps a constant on-screen width.
func LineWidth(m plotview.Matrix, px float64) float64 {
	s := math.Min(math.Abs(m.A), math.Abs(m.D))
	if s > 0 {
		return px / s
	}
	return px
}

// Extent returns the bounding box of points in the corner convention of
// plotview.Rect. ok is false for an empty series.
func Extent(points []plotview.Point) (r plotview.Rect, ok bool) {
	if len(points) == 0 {
		return plotview.Rect{}, false
	}
	r = plotview.Rect{X: math.Inf(1), Y: math.Inf(1), Width: math.Inf(-1), Height: math.Inf(-1)}
	for _, p := range points {
		r.X = math.Min(r.X, p.X)
		r.Y = math.Min(r.Y, p.Y)
		r.Width = math.Max(r.Width, p.X)
		r.Height = math.Max(r.Height, p.Y)
	}
	return r, true
}

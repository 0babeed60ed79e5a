package recording

import "github.com/gogpu/plotview"

// DashPolyline splits pts into the visible runs of a dash pattern. The
// pattern alternates on and off lengths; an odd-length pattern is
// repeated to make it even, so [5] means 5 on, 5 off. A pattern that
// cannot advance returns pts as a single run.
func DashPolyline(pts []plotview.Point, pattern []float64) [][]plotview.Point {
	if len(pts) < 2 {
		return nil
	}
	if !(Stroke{Dash: pattern}).IsDashed() {
		return [][]plotview.Point{pts}
	}
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
	}

	var (
		runs    [][]plotview.Point
		cur     = []plotview.Point{pts[0]}
		idx     = 0
		left    = pattern[0]
		drawing = true
	)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := b.Sub(a).Length()
		pos := 0.0
		for segLen-pos > left {
			pos += left
			p := a.Lerp(b, pos/segLen)
			if drawing {
				cur = append(cur, p)
				runs = append(runs, cur)
				cur = nil
			} else {
				cur = []plotview.Point{p}
			}
			drawing = !drawing
			idx = (idx + 1) % len(pattern)
			left = pattern[idx]
		}
		left -= segLen - pos
		if drawing {
			cur = append(cur, b)
		}
	}
	if drawing && len(cur) > 1 {
		runs = append(runs, cur)
	}
	return runs
}

package data

import "math"

// Simplify runs Douglas-Peucker decimation on the path, removing
// vertices that lie within tolerance (millimeters) of the line between
// their surviving neighbors. Mirrors the teacher's own Path.Simplify
// method (called as result.Simplify(...) in clip/clipper.go) rather
// than reaching for a library - this is a small, self-contained
// geometry primitive, not a concern any pack dependency covers.
func (p Path) Simplify(tolerance float64) Path {
	if len(p) < 3 || tolerance <= 0 {
		return p
	}
	keep := make([]bool, len(p))
	keep[0] = true
	keep[len(p)-1] = true
	douglasPeucker(p, 0, len(p)-1, tolerance, keep)

	out := make(Path, 0, len(p))
	for i, k := range keep {
		if k {
			out = append(out, p[i])
		}
	}
	return out
}

func douglasPeucker(p Path, start, end int, tolerance float64, keep []bool) {
	if end <= start+1 {
		return
	}

	maxDist := -1.0
	maxIdx := -1
	for i := start + 1; i < end; i++ {
		d := perpendicularDistance(p[i], p[start], p[end])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist > tolerance {
		keep[maxIdx] = true
		douglasPeucker(p, start, maxIdx, tolerance, keep)
		douglasPeucker(p, maxIdx, end, tolerance, keep)
	}
}

func perpendicularDistance(pt, a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return pt.Sub(a).Size()
	}
	num := math.Abs(dy*pt.X - dx*pt.Y + b.X*a.Y - b.Y*a.X)
	den := math.Hypot(dx, dy)
	return num / den
}

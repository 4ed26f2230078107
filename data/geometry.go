// Package data holds the plain geometry and job types shared by every
// pipeline stage. Types here carry no behavior tied to a specific
// geometry backend (that lives in package clip) - they're the
// lingua franca stages pass to each other.
package data

import "math"

// Point2D is a point in the XY plane, in millimeters.
type Point2D struct {
	X, Y float64
}

// Sub returns p - o.
func (p Point2D) Sub(o Point2D) Point2D {
	return Point2D{p.X - o.X, p.Y - o.Y}
}

// Size returns the Euclidean length of p treated as a vector.
func (p Point2D) Size() float64 {
	return math.Hypot(p.X, p.Y)
}

// Path is an ordered sequence of points. A closed path repeats its
// first point as its last.
type Path []Point2D

// Paths is a collection of independent paths.
type Paths []Path

// Length returns the total Euclidean length of the path's edges.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += p[i].Sub(p[i-1]).Size()
	}
	return total
}

// Closed reports whether the path has at least 4 points and its first
// and last point coincide (within a small tolerance). Whether the
// other vertices are distinct is not checked.
func (p Path) Closed() bool {
	if len(p) < 4 {
		return false
	}
	d := p[0].Sub(p[len(p)-1]).Size()
	return d < 1e-6
}

// AsClosed returns p with its first point appended again if it isn't
// already closed, per the spec's "first point repeated last" rule for
// emitted wall loops.
func (p Path) AsClosed() Path {
	if len(p) == 0 || p.Closed() {
		return p
	}
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = p[0]
	return out
}

// RotateAround rotates p by angleDeg degrees about pivot.
func (p Point2D) RotateAround(pivot Point2D, angleDeg float64) Point2D {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	return Point2D{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}

// RotateAround rotates every point of the path about pivot.
func (p Path) RotateAround(pivot Point2D, angleDeg float64) Path {
	out := make(Path, len(p))
	for i, v := range p {
		out[i] = v.RotateAround(pivot, angleDeg)
	}
	return out
}

// Bounds returns the path's axis-aligned bounding box. Ok is false for
// an empty path.
func (p Path) Bounds() (min, max Point2D, ok bool) {
	if len(p) == 0 {
		return Point2D{}, Point2D{}, false
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max, true
}

// Segment is a single line segment, as produced by slicing a mesh with
// a plane. Segments are unordered relative to each other - the
// RegionBuilder is responsible for chaining them into rings.
type Segment struct {
	A, B Point2D
}

// Polygon is a single region component: an outer boundary with zero or
// more interior holes. Holes are carried for correct area and
// infill/perimeter-offset accounting, but - per spec - are never
// walled separately; only Outline is emitted as a wall loop.
type Polygon struct {
	Outline Path
	Holes   Paths
}

// Area returns the polygon's area (outline minus holes) using the
// shoelace formula.
func (p Polygon) Area() float64 {
	area := ringArea(p.Outline)
	for _, h := range p.Holes {
		area -= math.Abs(ringArea(h))
	}
	return area
}

func ringArea(ring Path) float64 {
	if len(ring) < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(ring); i++ {
		j := (i + 1) % len(ring)
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return math.Abs(sum) / 2
}

// Centroid returns the polygon outline's vertex-averaged centroid. It
// is used only for deterministic ordering and as the rotation pivot
// for infill, not for precise area-weighted centroid calculations.
func (p Polygon) Centroid() Point2D {
	return pathCentroid(p.Outline)
}

func pathCentroid(path Path) Point2D {
	if len(path) == 0 {
		return Point2D{}
	}
	var sx, sy float64
	for _, v := range path {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(path))
	return Point2D{sx / n, sy / n}
}

// RotateAround rotates the polygon's outline and holes about pivot.
func (p Polygon) RotateAround(pivot Point2D, angleDeg float64) Polygon {
	holes := make(Paths, len(p.Holes))
	for i, h := range p.Holes {
		holes[i] = h.RotateAround(pivot, angleDeg)
	}
	return Polygon{
		Outline: p.Outline.RotateAround(pivot, angleDeg),
		Holes:   holes,
	}
}

// Region is the validated polygonal result of intersecting a mesh with
// one horizontal plane - a (possibly empty, possibly multi-part)
// collection of simple, non-overlapping polygons.
type Region []Polygon

// Empty reports whether the region has no surviving polygons.
func (r Region) Empty() bool {
	return len(r) == 0
}

package data

import "math"

// Vec3 is a point or vector in 3D model space, in millimeters.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Triangle is one facet of a surface mesh.
type Triangle struct {
	V0, V1, V2 Vec3
}

// Area returns the facet's area via the half-cross-product magnitude.
func (t Triangle) Area() float64 {
	return t.V1.Sub(t.V0).Cross(t.V2.Sub(t.V0)).Length() / 2
}

// ZRange returns the triangle's minimum and maximum Z coordinate.
func (t Triangle) ZRange() (min, max float64) {
	min = math.Min(t.V0.Z, math.Min(t.V1.Z, t.V2.Z))
	max = math.Max(t.V0.Z, math.Max(t.V1.Z, t.V2.Z))
	return
}

// Mesh is a conditioned, triangulated surface with a valid bounding box.
type Mesh struct {
	Triangles []Triangle
	Min, Max  Vec3
}

// RecomputeBounds recalculates Min/Max from the current triangle set.
// Called once after mesh conditioning (dedup/degenerate-removal/hole-fill)
// since those steps can change the effective bounding box.
func (m *Mesh) RecomputeBounds() {
	if len(m.Triangles) == 0 {
		m.Min, m.Max = Vec3{}, Vec3{}
		return
	}
	min := m.Triangles[0].V0
	max := min
	grow := func(v Vec3) {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	for _, t := range m.Triangles {
		grow(t.V0)
		grow(t.V1)
		grow(t.V2)
	}
	m.Min, m.Max = min, max
}

package data

import "testing"

func unitTriangle() Triangle {
	return Triangle{
		V0: Vec3{X: 0, Y: 0, Z: 0},
		V1: Vec3{X: 1, Y: 0, Z: 0},
		V2: Vec3{X: 0, Y: 1, Z: 1},
	}
}

func TestTriangleArea(t *testing.T) {
	tri := Triangle{
		V0: Vec3{X: 0, Y: 0, Z: 0},
		V1: Vec3{X: 4, Y: 0, Z: 0},
		V2: Vec3{X: 0, Y: 3, Z: 0},
	}
	if got, want := tri.Area(), 6.0; got != want {
		t.Errorf("Area() = %v, want %v", got, want)
	}
}

func TestTriangleZRange(t *testing.T) {
	min, max := unitTriangle().ZRange()
	if min != 0 || max != 1 {
		t.Errorf("ZRange() = (%v, %v), want (0, 1)", min, max)
	}
}

func TestMeshRecomputeBounds(t *testing.T) {
	m := &Mesh{Triangles: []Triangle{
		unitTriangle(),
		{V0: Vec3{X: -2, Y: -2, Z: -2}, V1: Vec3{X: 3, Y: 3, Z: 3}, V2: Vec3{X: 0, Y: 0, Z: 0}},
	}}
	m.RecomputeBounds()

	if m.Min != (Vec3{X: -2, Y: -2, Z: -2}) {
		t.Errorf("Min = %+v, want {-2 -2 -2}", m.Min)
	}
	if m.Max != (Vec3{X: 3, Y: 3, Z: 3}) {
		t.Errorf("Max = %+v, want {3 3 3}", m.Max)
	}
}

func TestMeshRecomputeBoundsEmpty(t *testing.T) {
	m := &Mesh{}
	m.RecomputeBounds()
	if m.Min != (Vec3{}) || m.Max != (Vec3{}) {
		t.Errorf("empty mesh bounds = %+v/%+v, want zero value", m.Min, m.Max)
	}
}

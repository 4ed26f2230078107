package clip

import (
	"testing"

	"fffslice/data"
)

func squareSegments() []data.Segment {
	a := data.Point2D{X: 0, Y: 0}
	b := data.Point2D{X: 10, Y: 0}
	c := data.Point2D{X: 10, Y: 10}
	d := data.Point2D{X: 0, Y: 10}
	return []data.Segment{
		{A: a, B: b},
		{A: b, B: c},
		{A: c, B: d},
		{A: d, B: a},
	}
}

func TestPolygonizeChainsOrderedSegmentsIntoOneRing(t *testing.T) {
	rings := Polygonize(squareSegments(), 1e-6, 1e-6)
	if len(rings) != 1 {
		t.Fatalf("Polygonize() produced %d rings, want 1", len(rings))
	}
	if len(rings[0]) < 4 {
		t.Errorf("ring has %d vertices, want at least 4", len(rings[0]))
	}
}

func TestPolygonizeChainsShuffledSegments(t *testing.T) {
	segs := squareSegments()
	shuffled := []data.Segment{segs[2], segs[0], segs[3], segs[1]}

	rings := Polygonize(shuffled, 1e-6, 1e-6)
	if len(rings) != 1 {
		t.Fatalf("Polygonize() of shuffled segments produced %d rings, want 1", len(rings))
	}
}

func TestPolygonizeBridgesSmallGap(t *testing.T) {
	segs := squareSegments()
	// Open up a small gap between the last and first segment endpoints
	// larger than snap but within bridge tolerance.
	segs[3].B = data.Point2D{X: 0.01, Y: 0.01}

	rings := Polygonize(segs, 1e-6, 0.05)
	if len(rings) != 1 {
		t.Fatalf("Polygonize() with bridgeable gap produced %d rings, want 1", len(rings))
	}
}

func TestPolygonizeDropsUnbridgeableGap(t *testing.T) {
	segs := squareSegments()
	segs[3].B = data.Point2D{X: 1, Y: 1}

	rings := Polygonize(segs, 1e-6, 0.05)
	if len(rings) != 0 {
		t.Errorf("Polygonize() with an unbridgeable gap produced %d rings, want 0", len(rings))
	}
}

func TestPolygonizeMultipleDisjointRings(t *testing.T) {
	a := data.Point2D{X: 0, Y: 0}
	b := data.Point2D{X: 1, Y: 0}
	c := data.Point2D{X: 1, Y: 1}
	d := data.Point2D{X: 0, Y: 1}

	e := data.Point2D{X: 100, Y: 100}
	f := data.Point2D{X: 101, Y: 100}
	g := data.Point2D{X: 101, Y: 101}
	h := data.Point2D{X: 100, Y: 101}

	segs := []data.Segment{
		{A: a, B: b}, {A: b, B: c}, {A: c, B: d}, {A: d, B: a},
		{A: e, B: f}, {A: f, B: g}, {A: g, B: h}, {A: h, B: e},
	}

	rings := Polygonize(segs, 1e-6, 1e-6)
	if len(rings) != 2 {
		t.Fatalf("Polygonize() of two disjoint squares produced %d rings, want 2", len(rings))
	}
}

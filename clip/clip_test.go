package clip

import (
	"math"
	"testing"

	"fffslice/data"
)

func unitSquare() data.Polygon {
	return data.Polygon{Outline: data.Path{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
}

func TestPointRoundTrip(t *testing.T) {
	p := data.Point2D{X: 12.345, Y: -6.789}
	cp := toClipperPoint(p)
	back := fromClipperPoint(cp)

	if math.Abs(back.X-p.X) > 1e-3 || math.Abs(back.Y-p.Y) > 1e-3 {
		t.Errorf("round trip through micrometers mismatch: got %+v, want %+v", back, p)
	}
}

func TestUnionMergesOverlappingSquares(t *testing.T) {
	a := unitSquare()
	b := data.Polygon{Outline: data.Path{
		{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15},
	}}

	region, err := Union(data.Region{a, b})
	if err != nil {
		t.Fatalf("Union() error = %v", err)
	}
	if len(region) != 1 {
		t.Fatalf("Union() of two overlapping squares produced %d polygons, want 1", len(region))
	}

	area := region[0].Area()
	// each square is 100mm^2, overlap is a 5x5 square (25mm^2)
	want := 175.0
	if math.Abs(area-want) > 1e-2 {
		t.Errorf("union area = %v, want ~%v", area, want)
	}
}

func TestUnionEmptyRegion(t *testing.T) {
	region, err := Union(nil)
	if err != nil {
		t.Fatalf("Union(nil) error = %v", err)
	}
	if len(region) != 0 {
		t.Errorf("Union(nil) = %v, want empty", region)
	}
}

func TestRepairRingSelfIntersectingBowtie(t *testing.T) {
	bowtie := data.Path{
		{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10},
	}
	region, err := RepairRing(bowtie)
	if err != nil {
		t.Fatalf("RepairRing() error = %v", err)
	}
	if len(region) < 2 {
		t.Errorf("RepairRing() of a bowtie produced %d polygon(s), want at least 2", len(region))
	}
}

func TestOffsetShrinksArea(t *testing.T) {
	region, err := Offset(data.Region{unitSquare()}, -1, JoinMiter, 10)
	if err != nil {
		t.Fatalf("Offset() error = %v", err)
	}
	if len(region) != 1 {
		t.Fatalf("Offset() produced %d polygons, want 1", len(region))
	}
	if area := region[0].Area(); area >= 100 {
		t.Errorf("inward offset area = %v, want < 100", area)
	}
}

func TestOffsetGrowsArea(t *testing.T) {
	region, err := Offset(data.Region{unitSquare()}, 1, JoinMiter, 10)
	if err != nil {
		t.Fatalf("Offset() error = %v", err)
	}
	if len(region) != 1 {
		t.Fatalf("Offset() produced %d polygons, want 1", len(region))
	}
	if area := region[0].Area(); area <= 100 {
		t.Errorf("outward offset area = %v, want > 100", area)
	}
}

func TestIntersectLineCrossingSquare(t *testing.T) {
	line := data.Segment{A: data.Point2D{X: 5, Y: -5}, B: data.Point2D{X: 5, Y: 15}}
	result, err := IntersectLine(unitSquare(), line)
	if err != nil {
		t.Fatalf("IntersectLine() error = %v", err)
	}
	if result.Kind != Segment {
		t.Fatalf("Kind = %v, want Segment", result.Kind)
	}
	if got := result.One.Length(); math.Abs(got-10) > 1e-2 {
		t.Errorf("crossing segment length = %v, want ~10", got)
	}
}

func TestIntersectLineMissingSquare(t *testing.T) {
	line := data.Segment{A: data.Point2D{X: 50, Y: -5}, B: data.Point2D{X: 50, Y: 15}}
	result, err := IntersectLine(unitSquare(), line)
	if err != nil {
		t.Fatalf("IntersectLine() error = %v", err)
	}
	if result.Kind != Empty {
		t.Errorf("Kind = %v, want Empty", result.Kind)
	}
}

func TestIntersectLineThroughHoleYieldsTwoSegments(t *testing.T) {
	poly := data.Polygon{
		Outline: data.Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Holes:   data.Paths{{{X: 4, Y: 3}, {X: 6, Y: 3}, {X: 6, Y: 7}, {X: 4, Y: 7}}},
	}
	line := data.Segment{A: data.Point2D{X: 5, Y: -5}, B: data.Point2D{X: 5, Y: 15}}

	result, err := IntersectLine(poly, line)
	if err != nil {
		t.Fatalf("IntersectLine() error = %v", err)
	}
	if result.Kind != Segments {
		t.Fatalf("Kind = %v, want Segments, got %+v", result.Kind, result)
	}
	if len(result.Many) != 2 {
		t.Errorf("len(Many) = %d, want 2", len(result.Many))
	}
}

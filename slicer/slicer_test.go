package slicer

import (
	"testing"

	"fffslice/config"
	"fffslice/data"
)

func unitCube() *data.Mesh {
	// A 10x10x10mm cube, two triangles per face, enough for plane
	// intersection tests (slicing does not require watertightness).
	lo, hi := 0.0, 10.0
	v := func(x, y, z float64) data.Vec3 { return data.Vec3{X: x, Y: y, Z: z} }

	bottom := []data.Triangle{
		{V0: v(lo, lo, lo), V1: v(hi, lo, lo), V2: v(hi, hi, lo)},
		{V0: v(lo, lo, lo), V1: v(hi, hi, lo), V2: v(lo, hi, lo)},
	}
	top := []data.Triangle{
		{V0: v(lo, lo, hi), V1: v(hi, hi, hi), V2: v(hi, lo, hi)},
		{V0: v(lo, lo, hi), V1: v(lo, hi, hi), V2: v(hi, hi, hi)},
	}
	front := []data.Triangle{
		{V0: v(lo, lo, lo), V1: v(hi, lo, hi), V2: v(hi, lo, lo)},
		{V0: v(lo, lo, lo), V1: v(lo, lo, hi), V2: v(hi, lo, hi)},
	}
	back := []data.Triangle{
		{V0: v(lo, hi, lo), V1: v(hi, hi, lo), V2: v(hi, hi, hi)},
		{V0: v(lo, hi, lo), V1: v(hi, hi, hi), V2: v(lo, hi, hi)},
	}
	left := []data.Triangle{
		{V0: v(lo, lo, lo), V1: v(lo, hi, lo), V2: v(lo, hi, hi)},
		{V0: v(lo, lo, lo), V1: v(lo, hi, hi), V2: v(lo, lo, hi)},
	}
	right := []data.Triangle{
		{V0: v(hi, lo, lo), V1: v(hi, hi, hi), V2: v(hi, hi, lo)},
		{V0: v(hi, lo, lo), V1: v(hi, lo, hi), V2: v(hi, hi, hi)},
	}

	mesh := &data.Mesh{}
	for _, face := range [][]data.Triangle{bottom, top, front, back, left, right} {
		mesh.Triangles = append(mesh.Triangles, face...)
	}
	mesh.RecomputeBounds()
	return mesh
}

func baseConfig() *config.Options {
	cfg := config.Default()
	cfg.Print.LayerHeight = 2.0
	cfg.Print.BottomLayers = 1
	cfg.Print.TopLayers = 1
	return cfg
}

func TestSliceProducesExpectedLayerCount(t *testing.T) {
	mesh := unitCube()
	cfg := baseConfig()

	sections, err := New().Slice(mesh, cfg)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}

	// 10mm tall at 2mm layers = 5 candidate planes; all should intersect
	// the cube's side walls.
	if len(sections) != 5 {
		t.Fatalf("len(sections) = %d, want 5", len(sections))
	}
}

func TestSliceMarksBottomAndTopLayersSolid(t *testing.T) {
	mesh := unitCube()
	cfg := baseConfig()

	sections, err := New().Slice(mesh, cfg)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}

	if !sections[0].Solid {
		t.Error("first layer should be solid (BottomLayers=1)")
	}
	if !sections[len(sections)-1].Solid {
		t.Error("last layer should be solid (TopLayers=1)")
	}
	if sections[2].Solid {
		t.Error("a middle layer should not be forced solid")
	}
}

func TestSliceSectionSegmentCountsPerWall(t *testing.T) {
	mesh := unitCube()
	cfg := baseConfig()

	sections, err := New().Slice(mesh, cfg)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}

	for _, s := range sections {
		// Each wall is two triangles split along a diagonal, so a plane
		// above the bottom crosses both (8 segments); on the bottom plane
		// each wall's second triangle only touches it at one vertex (4).
		want := 8
		if s.Z == 0 {
			want = 4
		}
		if len(s.Segments) != want {
			t.Errorf("section at z=%v has %d segments, want %d", s.Z, len(s.Segments), want)
		}
	}
}

func TestSliceZeroHeightMeshReturnsNoError(t *testing.T) {
	mesh := &data.Mesh{
		Triangles: []data.Triangle{{V0: data.Vec3{}, V1: data.Vec3{X: 1}, V2: data.Vec3{Y: 1}}},
	}
	mesh.RecomputeBounds()
	cfg := baseConfig()

	sections, err := New().Slice(mesh, cfg)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}
	_ = sections // a zero-height mesh yields n=1 candidate plane; may or may not intersect
}

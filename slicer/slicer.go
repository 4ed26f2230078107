// Package slicer implements the Slicer stage: it intersects a mesh
// with a stack of horizontal planes and emits the raw 2D segments for
// each non-empty plane (spec §4.2).
package slicer

import (
	"math"

	"fffslice/config"
	"fffslice/data"
)

// Slicer computes per-plane mesh/plane intersections.
type Slicer struct{}

func New() *Slicer {
	return &Slicer{}
}

// Slice emits one data.Section per non-empty plane intersection.
// Classification (solid vs sparse) uses the pre-skip candidate index
// k, so a skipped bottom layer still counts toward BottomLayers - the
// Section carries both Index and Solid so no downstream stage needs
// to recompute N.
func (s *Slicer) Slice(mesh *data.Mesh, cfg *config.Options) ([]data.Section, error) {
	h := cfg.Print.LayerHeight
	zMin, zMax := mesh.Min.Z, mesh.Max.Z

	n := int(math.Ceil((zMax - zMin) / h))
	if n < 1 {
		n = 1
	}

	var sections []data.Section
	for k := 0; k < n; k++ {
		z := zMin + float64(k)*h
		segments := intersectPlane(mesh, z)
		if len(segments) == 0 {
			continue
		}

		solid := k < cfg.Print.BottomLayers || k >= n-cfg.Print.TopLayers
		sections = append(sections, data.Section{
			Index:    k,
			Z:        data.Millimeter(z),
			Segments: segments,
			Solid:    solid,
		})
	}

	return sections, nil
}

// intersectPlane computes the unordered set of 2D segments formed by
// intersecting every triangle that straddles z with the plane z=const.
func intersectPlane(mesh *data.Mesh, z float64) []data.Segment {
	var segments []data.Segment

	for _, t := range mesh.Triangles {
		zMin, zMax := t.ZRange()
		if z < zMin || z > zMax {
			continue
		}

		pts := make([]data.Point2D, 0, 2)
		edge := func(a, b data.Vec3) {
			da, db := a.Z-z, b.Z-z
			switch {
			case da == 0:
				// A vertex on the plane is taken once, as the start of
				// the edge leaving it.
				pts = append(pts, data.Point2D{X: a.X, Y: a.Y})
			case db == 0:
				return
			case (da < 0) != (db < 0):
				frac := da / (da - db)
				pts = append(pts, data.Point2D{
					X: a.X + frac*(b.X-a.X),
					Y: a.Y + frac*(b.Y-a.Y),
				})
			}
		}

		edge(t.V0, t.V1)
		edge(t.V1, t.V2)
		edge(t.V2, t.V0)

		if len(pts) == 2 && (pts[0] != pts[1]) {
			segments = append(segments, data.Segment{A: pts[0], B: pts[1]})
		}
	}

	return segments
}

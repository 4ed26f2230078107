// Package infill implements the InfillGenerator stage: a family of
// straight parallel lines clipped to a region, at full density for
// solid (top/bottom) layers or at the configured density otherwise
// (spec §4.5).
//
// Per spec, every configured fill angle is applied to every polygon
// and the results concatenated - layers are not indexed into
// FillAngles (spec §9's open question is resolved in favor of
// preserving this source behavior).
package infill

import (
	"fffslice/clip"
	"fffslice/config"
	"fffslice/data"
)

// Generator implements handler.InfillGenerator.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate produces the infill line family for one region.
func (g *Generator) Generate(r data.Region, solid bool, cfg *config.Options) data.Paths {
	d := cfg.Printer.NozzleDiameter

	ratio := cfg.Print.InfillDensity / 100
	if solid {
		ratio = 1.0
	}
	spacing := d / ratio
	overlap := cfg.Print.SolidOverlap * d
	minLength := 0.5 * d
	extension := 4 * d

	var out data.Paths
	for _, poly := range r {
		expanded, err := clip.Offset(data.Region{poly}, overlap, clip.JoinMiter, innerMiterLimit)
		if err != nil {
			continue
		}

		for _, angle := range cfg.Print.FillAngles {
			for _, ep := range expanded {
				out = append(out, linesForPolygon(ep, angle, spacing, extension, minLength)...)
			}
		}
	}

	return out
}

const innerMiterLimit = 5

// linesForPolygon produces the scanline family for one polygon at one
// fill angle, working in the polygon's rotated frame and rotating
// surviving segments back to world coordinates (spec §4.5 steps 2a-2e).
func linesForPolygon(poly data.Polygon, angleDeg, spacing, extension, minLength float64) data.Paths {
	pivot := poly.Centroid()
	rotated := poly.RotateAround(pivot, angleDeg)

	min, max, ok := rotated.Outline.Bounds()
	if !ok {
		return nil
	}

	var segments data.Paths
	for x := min.X - extension; x < max.X+extension; x += spacing {
		line := data.Segment{
			A: data.Point2D{X: x, Y: min.Y - extension},
			B: data.Point2D{X: x, Y: max.Y + extension},
		}

		intersection, err := clip.IntersectLine(rotated, line)
		if err != nil {
			continue
		}

		switch intersection.Kind {
		case clip.Empty:
			continue
		case clip.Segment:
			segments = append(segments, intersection.One)
		case clip.Segments:
			segments = append(segments, intersection.Many...)
		}
	}

	var out data.Paths
	for _, s := range segments {
		if s.Length() < minLength {
			continue
		}
		out = append(out, s.RotateAround(pivot, -angleDeg))
	}
	return out
}

// Package skirt implements the supplemental SkirtGenerator feature
// described in SPEC_FULL.md §5: a convex-hull priming loop drawn once
// around the first emitted layer's footprint. It is additive and, per
// config.Skirt.Enabled defaulting to false, inert unless explicitly
// turned on.
package skirt

import (
	convexhull "github.com/furstenheim/go-convex-hull-2d"

	"fffslice/clip"
	"fffslice/config"
	"fffslice/data"
)

const hullMiterLimit = 10

// hullPoint adapts data.Point2D to the convexhull.Point interface.
type hullPoint struct {
	x, y float64
}

func (p hullPoint) GetX() float64 { return p.x }
func (p hullPoint) GetY() float64 { return p.y }

// Generator implements the skirt priming loop.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate returns cfg.Skirt.Loops closed loops tracing the convex
// hull of the first layer's region, offset outward by
// cfg.Skirt.Distance plus one nozzle width per additional loop.
func (g *Generator) Generate(firstLayer data.Region, cfg *config.Options) data.Paths {
	if !cfg.Skirt.Enabled || len(firstLayer) == 0 {
		return nil
	}

	hull := convexHullOf(firstLayer)
	if len(hull) < 3 {
		return nil
	}

	base := data.Region{{Outline: hull}}
	d := cfg.Printer.NozzleDiameter

	var loops data.Paths
	for i := 0; i < cfg.Skirt.Loops; i++ {
		distance := cfg.Skirt.Distance + float64(i)*d
		offsetHull, err := clip.Offset(base, distance, clip.JoinMiter, hullMiterLimit)
		if err != nil || len(offsetHull) == 0 {
			continue
		}
		loops = append(loops, offsetHull[0].Outline.AsClosed())
	}

	return loops
}

func convexHullOf(region data.Region) data.Path {
	var points []convexhull.Point
	for _, poly := range region {
		for _, p := range poly.Outline {
			points = append(points, hullPoint{p.X, p.Y})
		}
	}

	hullPoints := convexhull.ConvexHull(points)
	out := make(data.Path, len(hullPoints))
	for i, p := range hullPoints {
		out[i] = data.Point2D{X: p.GetX(), Y: p.GetY()}
	}
	return out
}

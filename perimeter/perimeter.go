// Package perimeter implements the PerimeterGenerator stage: concentric
// wall loops from a region (spec §4.4).
//
// Offsets are linearly spaced across the fixed band [0, 0.7*nozzle]
// regardless of how many perimeters are requested - this reproduces
// the source behavior verbatim, including its documented quirk of
// producing near-duplicate outer loops when Perimeters is large
// (spec §9). Interior holes are not walled separately, also per spec.
package perimeter

import (
	"sort"

	"fffslice/clip"
	"fffslice/config"
	"fffslice/data"
)

const innerMiterLimit = 5

// Generator implements handler.PerimeterGenerator.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate produces P perimeter offsets (outermost first) and, for
// each, the exterior ring of every surviving sub-polygon as a closed
// wall loop.
func (g *Generator) Generate(r data.Region, cfg *config.Options) data.Paths {
	d := cfg.Printer.NozzleDiameter
	p := cfg.Print.Perimeters
	minArea := (0.5 * d) * (0.5 * d)

	var walls data.Paths
	for _, offset := range linspace(0, 0.7*d, p) {
		shrunk, err := clip.Offset(r, -offset, clip.JoinMiter, innerMiterLimit)
		if err != nil || len(shrunk) == 0 {
			continue
		}

		sort.SliceStable(shrunk, func(i, j int) bool {
			ci, cj := shrunk[i].Centroid(), shrunk[j].Centroid()
			if ci.X != cj.X {
				return ci.X < cj.X
			}
			return ci.Y < cj.Y
		})

		for _, poly := range shrunk {
			if poly.Area() < minArea {
				continue
			}
			walls = append(walls, poly.Outline.AsClosed())
		}
	}

	return walls
}

// linspace mirrors numpy.linspace(start, stop, n): n points spaced
// evenly over [start, stop] inclusive. n<=1 returns just [start].
func linspace(start, stop float64, n int) []float64 {
	if n <= 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

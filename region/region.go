// Package region implements the RegionBuilder stage: turning one
// section's raw 2D segments into a clean, offset-compensated,
// simplified polygonal region (spec §4.3).
package region

import (
	"errors"
	"math"

	"fffslice/clip"
	"fffslice/config"
	"fffslice/data"
	"fffslice/errs"
)

// ErrEmpty is returned when a section's region union is empty - the
// caller should skip the layer silently, per spec.
var ErrEmpty = errors.New("region: empty after build")

const (
	ringSnapMM   = 1e-4
	ringBridgeMM = 0.05
	offsetMiterLimit = 10
)

// Builder implements handler.RegionBuilder.
type Builder struct{}

func New() *Builder {
	return &Builder{}
}

// Build runs spec §4.3 steps 1-6 on one section.
func (b *Builder) Build(section data.Section, cfg *config.Options) (data.Region, error) {
	rings := clip.Polygonize(section.Segments, ringSnapMM, ringBridgeMM)
	if len(rings) == 0 {
		return nil, ErrEmpty
	}

	var repaired data.Region
	for _, ring := range rings {
		r, err := clip.RepairRing(ring)
		if err != nil {
			return nil, errs.Wrap(errs.GeometryError, err)
		}
		repaired = append(repaired, r...)
	}

	compensated, err := clip.Offset(repaired, cfg.Print.XYCompensation, clip.JoinMiter, offsetMiterLimit)
	if err != nil {
		return nil, errs.Wrap(errs.GeometryError, err)
	}

	var survivors data.Region
	for _, poly := range compensated {
		simplified := data.Polygon{
			Outline: poly.Outline.Simplify(cfg.Print.SimplifyTolerance),
			Holes:   simplifyHoles(poly.Holes, cfg.Print.SimplifyTolerance),
		}

		area := simplified.Area()
		if math.IsNaN(area) || math.IsInf(area, 0) {
			return nil, errs.New(errs.GeometryError, "non-finite polygon area during region build")
		}
		if area <= cfg.Print.SmallFeature {
			continue
		}
		survivors = append(survivors, simplified)
	}

	if len(survivors) == 0 {
		return nil, ErrEmpty
	}

	union, err := clip.Union(survivors)
	if err != nil {
		return nil, errs.Wrap(errs.GeometryError, err)
	}
	if len(union) == 0 {
		return nil, ErrEmpty
	}

	return union, nil
}

func simplifyHoles(holes data.Paths, tolerance float64) data.Paths {
	if len(holes) == 0 {
		return nil
	}
	out := make(data.Paths, len(holes))
	for i, h := range holes {
		out[i] = h.Simplify(tolerance)
	}
	return out
}

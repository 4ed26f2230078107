// Package handler defines the small interfaces each pipeline stage
// implements, the same split the teacher uses (handler.ModelReader,
// handler.ModelSlicer, ...) so the engine can be wired with
// alternative implementations without touching orchestration code.
package handler

import (
	"fffslice/config"
	"fffslice/data"
)

// MeshLoader loads and conditions a triangulated surface from a file
// path (spec §4.1).
type MeshLoader interface {
	Load(path string) (*data.Mesh, error)
}

// ModelSlicer computes the mesh's per-plane sections (spec §4.2).
type ModelSlicer interface {
	Slice(mesh *data.Mesh, cfg *config.Options) ([]data.Section, error)
}

// RegionBuilder turns one section's raw segments into a validated
// region (spec §4.3).
type RegionBuilder interface {
	Build(section data.Section, cfg *config.Options) (data.Region, error)
}

// PerimeterGenerator produces concentric wall loops from a region
// (spec §4.4).
type PerimeterGenerator interface {
	Generate(r data.Region, cfg *config.Options) data.Paths
}

// InfillGenerator produces infill line families from a region
// (spec §4.5).
type InfillGenerator interface {
	Generate(r data.Region, solid bool, cfg *config.Options) data.Paths
}

// GCodeWriter serializes layers to G-code text (spec §4.6).
type GCodeWriter interface {
	Write(layers []data.Layer, cfg *config.Options) string
}

// SkirtGenerator produces the supplemental priming-skirt loops
// (SPEC_FULL.md §5).
type SkirtGenerator interface {
	Generate(firstLayerRegion data.Region, cfg *config.Options) data.Paths
}

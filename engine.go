// Package fffslice wires the MeshLoader -> Slicer -> RegionBuilder ->
// {PerimeterGenerator, InfillGenerator} -> GCodeWriter pipeline into a
// single Engine, the same combine-all-the-handlers shape as the
// teacher's GoSlice struct and its Process method (goslice.go).
package fffslice

import (
	"errors"
	"time"

	"fffslice/config"
	"fffslice/data"
	"fffslice/errs"
	"fffslice/gcode"
	"fffslice/handler"
	"fffslice/infill"
	"fffslice/perimeter"
	"fffslice/reader"
	"fffslice/region"
	"fffslice/skirt"
	"fffslice/slicer"
)

// Engine combines all logic needed to slice a model and generate a
// G-code file.
type Engine struct {
	Options   *config.Options
	Loader    handler.MeshLoader
	Slicer    handler.ModelSlicer
	Region    handler.RegionBuilder
	Perimeter handler.PerimeterGenerator
	Infill    handler.InfillGenerator
	Skirt     handler.SkirtGenerator
	Writer    handler.GCodeWriter
}

// NewEngine returns an Engine with all built-in stage implementations.
func NewEngine(opts *config.Options) *Engine {
	return &Engine{
		Options:   opts,
		Loader:    reader.NewLoader(),
		Slicer:    slicer.New(),
		Region:    region.New(),
		Perimeter: perimeter.New(),
		Infill:    infill.New(),
		Skirt:     skirt.New(),
		Writer:    gcode.NewWriter(),
	}
}

// Process slices inputPath (an STL file) and writes the resulting
// G-code program to outputPath. It is idempotent: every call builds
// its output from scratch, so repeated calls on the same Engine
// produce byte-identical files for the same input and Options.
func (e *Engine) Process(inputPath, outputPath string) error {
	start := time.Now()

	mesh, err := e.Loader.Load(inputPath)
	if err != nil {
		return err
	}
	e.Options.Logger.Printf("model loaded: %d triangles, bounds %+v .. %+v\n", len(mesh.Triangles), mesh.Min, mesh.Max)

	sections, err := e.Slicer.Slice(mesh, e.Options)
	if err != nil {
		return err
	}
	e.Options.Logger.Printf("sliced into %d candidate layers\n", len(sections))

	layers, err := e.buildLayers(sections)
	if err != nil {
		return err
	}
	e.Options.Logger.Printf("layers ready: %d\n", len(layers))

	gcodeText := e.Writer.Write(layers, e.Options)

	if err := writeAtomic(outputPath, gcodeText); err != nil {
		return errs.Wrap(errs.IOError, err)
	}

	e.Options.Logger.Printf("full processing time: %v\n", time.Since(start))
	return nil
}

// buildLayers runs RegionBuilder, PerimeterGenerator and
// InfillGenerator over every section, silently skipping sections whose
// region union is empty (spec: "A section producing an empty region:
// skip the layer silently").
func (e *Engine) buildLayers(sections []data.Section) ([]data.Layer, error) {
	var layers []data.Layer
	skirtDrawn := false

	for _, section := range sections {
		r, err := e.Region.Build(section, e.Options)
		if err != nil {
			if errors.Is(err, region.ErrEmpty) {
				continue
			}
			return nil, err
		}

		layer := data.Layer{
			Z:      section.Z,
			Walls:  e.Perimeter.Generate(r, e.Options),
			Infill: e.Infill.Generate(r, section.Solid, e.Options),
		}

		if !skirtDrawn && e.Options.Skirt.Enabled {
			layer.Skirt = e.Skirt.Generate(r, e.Options)
			skirtDrawn = true
		}

		layers = append(layers, layer)
	}

	return layers, nil
}

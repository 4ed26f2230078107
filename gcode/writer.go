package gcode

import (
	"fffslice/config"
	"fffslice/data"
)

const (
	outerWallFlow = 1.1
	infillFlow    = 1.0
	skirtFlow     = 1.0
)

// Writer implements handler.GCodeWriter.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes layers (already in bottom-to-top input order) into
// a complete G-code program: preamble, one block per layer, postamble.
func (w *Writer) Write(layers []data.Layer, cfg *config.Options) string {
	b := NewBuilder(cfg)
	b.Reset()
	b.Preamble()

	for _, layer := range layers {
		b.BeginLayer(layer.Z)

		for _, loop := range layer.Skirt {
			b.EmitPath(loop, cfg.Print.OuterWallSpeed, skirtFlow)
		}
		for _, wall := range layer.Walls {
			b.EmitPath(wall, cfg.Print.OuterWallSpeed, outerWallFlow)
		}
		for _, fill := range layer.Infill {
			b.EmitPath(fill, cfg.Print.InfillSpeed, infillFlow)
		}
	}

	b.Postamble()
	return b.String()
}

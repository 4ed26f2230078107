// Package gcode implements the GCodeWriter stage: serializing layers
// into G-code text with extrusion bookkeeping (spec §4.6).
package gcode

import (
	"fmt"
	"math"
	"strings"

	"fffslice/config"
	"fffslice/data"
)

// minEdgeLength is the shortest edge the writer will emit a move for;
// shorter edges are skipped entirely (no E update, no line).
const minEdgeLength = 0.01 // mm

// Builder accumulates G-code text and owns the job's single
// ExtruderState, mirroring the teacher's gcode.Builder referenced from
// gcode/renderer/layer.go.
type Builder struct {
	cfg      *config.Options
	extruder data.ExtruderState
	lines    strings.Builder
}

// NewBuilder returns a Builder with a freshly reset extruder counter -
// this is what makes (*Engine).Process idempotent across repeated
// calls on the same engine instance.
func NewBuilder(cfg *config.Options) *Builder {
	return &Builder{cfg: cfg}
}

func (b *Builder) line(format string, args ...interface{}) {
	b.lines.WriteString(fmt.Sprintf(format, args...))
	b.lines.WriteByte('\n')
}

// Preamble emits the fixed job-start sequence (spec §4.6).
func (b *Builder) Preamble() {
	b.line("G28")
	b.line("M104 S%d", b.cfg.Filament.PrintTemp)
	b.line("M140 S%d", b.cfg.Filament.BedTemp)
	b.line("G1 Z10 F5000")
}

// Postamble emits the fixed job-end sequence.
func (b *Builder) Postamble() {
	b.line("M104 S0")
	b.line("M140 S0")
	b.line("G28 X")
	b.line("M84")
}

// BeginLayer emits the layer comment and the raise/lower Z moves.
func (b *Builder) BeginLayer(z data.Millimeter) {
	b.line(";LAYER:%.2f", float64(z))
	b.line("G0 Z%.3f F3000", float64(z)+b.cfg.Retraction.ZHop)
	b.line("G1 Z%.3f F%d", float64(z), feedRate(b.cfg.Print.PrintSpeed))
}

// EmitPath writes one polyline's travel move plus its extrude edges at
// the given speed and flow multiplier, advancing the shared extruder
// counter. Edges shorter than minEdgeLength are skipped with no E
// update and no emitted line, per spec.
func (b *Builder) EmitPath(path data.Path, speed, flow float64) {
	if len(path) < 2 {
		return
	}

	nozzleArea := math.Pi * (b.cfg.Printer.NozzleDiameter / 2) * (b.cfg.Printer.NozzleDiameter / 2)
	layerHeight := b.cfg.Print.LayerHeight
	nozzle := b.cfg.Printer.NozzleDiameter

	b.line("G0 X%.3f Y%.3f F%d", path[0].X, path[0].Y, feedRate(b.cfg.Print.TravelSpeed))

	for i := 1; i < len(path); i++ {
		edge := path[i].Sub(path[i-1])
		length := edge.Size()
		if length < minEdgeLength {
			continue
		}

		volume := layerHeight * nozzle * length
		deltaE := (volume * flow) / nozzleArea
		e := b.extruder.Advance(deltaE)

		b.line("G1 X%.3f Y%.3f E%.5f F%d", path[i].X, path[i].Y, e, feedRate(speed))
	}
}

// Reset zeroes the extruder counter, called at the start of Writer.Write.
func (b *Builder) Reset() {
	b.extruder.Reset()
}

// String returns the accumulated G-code text.
func (b *Builder) String() string {
	return b.lines.String()
}

func feedRate(speedMMPerSec float64) int {
	return int(speedMMPerSec * 60)
}

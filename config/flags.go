package config

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagSet registers one POSIX-style flag per Options field onto fs and
// returns Options populated from the registered defaults, to be
// re-read after fs.Parse - the same one-flag-per-setting style as
// cmd/goslice/slicer.go.
func FlagSet(fs *pflag.FlagSet) *Options {
	o := Default()

	fs.Float64Var(&o.Printer.NozzleDiameter, "nozzle-diameter", o.Printer.NozzleDiameter, "nozzle diameter in mm")
	fs.Float64Var(&o.Printer.FilamentDiameter, "filament-diameter", o.Printer.FilamentDiameter, "filament diameter in mm")

	fs.Float64Var(&o.Print.LayerHeight, "layer-height", o.Print.LayerHeight, "layer height in mm")
	fs.IntVar(&o.Print.Perimeters, "perimeters", o.Print.Perimeters, "number of perimeter offsets")
	fs.Float64Var(&o.Print.InfillDensity, "infill-density", o.Print.InfillDensity, "infill density in percent")
	fs.StringVar(&fillAnglesRaw, "fill-angles", joinFloats(o.Print.FillAngles), "comma-separated infill angles in degrees")
	fs.Float64Var(&o.Print.SolidOverlap, "solid-overlap", o.Print.SolidOverlap, "infill-to-wall overlap as a fraction of nozzle diameter")
	fs.Float64Var(&o.Print.SmallFeature, "small-feature", o.Print.SmallFeature, "minimum region area in mm^2")
	fs.Float64Var(&o.Print.XYCompensation, "xy-compensation", o.Print.XYCompensation, "signed XY compensation in mm")
	fs.Float64Var(&o.Print.SimplifyTolerance, "simplify-tolerance", o.Print.SimplifyTolerance, "Douglas-Peucker tolerance in mm")
	fs.IntVar(&o.Print.BottomLayers, "bottom-layers", o.Print.BottomLayers, "number of forced-solid bottom layers")
	fs.IntVar(&o.Print.TopLayers, "top-layers", o.Print.TopLayers, "number of forced-solid top layers")
	fs.Float64Var(&o.Print.TravelSpeed, "travel-speed", o.Print.TravelSpeed, "travel speed in mm/s")
	fs.Float64Var(&o.Print.PrintSpeed, "print-speed", o.Print.PrintSpeed, "Z-move print speed in mm/s")
	fs.Float64Var(&o.Print.OuterWallSpeed, "outer-wall-speed", o.Print.OuterWallSpeed, "outer wall speed in mm/s")
	fs.Float64Var(&o.Print.InfillSpeed, "infill-speed", o.Print.InfillSpeed, "infill speed in mm/s")

	fs.IntVar(&o.Filament.PrintTemp, "print-temp", o.Filament.PrintTemp, "hot end temperature in C")
	fs.IntVar(&o.Filament.BedTemp, "bed-temp", o.Filament.BedTemp, "bed temperature in C")

	fs.Float64Var(&o.Retraction.Amount, "retraction", o.Retraction.Amount, "retraction length in mm")
	fs.Float64Var(&o.Retraction.Speed, "retract-speed", o.Retraction.Speed, "retraction speed in mm/s")
	fs.Float64Var(&o.Retraction.ZHop, "z-hop", o.Retraction.ZHop, "Z-hop height in mm")

	fs.BoolVar(&o.Skirt.Enabled, "skirt", o.Skirt.Enabled, "enable the priming skirt")
	fs.IntVar(&o.Skirt.Loops, "skirt-loops", o.Skirt.Loops, "number of skirt loops")
	fs.Float64Var(&o.Skirt.Distance, "skirt-distance", o.Skirt.Distance, "gap between the model and the skirt in mm")

	return o
}

// fillAnglesRaw backs the --fill-angles flag; pflag has no []float64
// value type, so it's parsed by hand after Parse via ResolveFillAngles.
var fillAnglesRaw string

// ResolveFillAngles must be called after fs.Parse to push the parsed
// --fill-angles flag into o.Print.FillAngles.
func ResolveFillAngles(o *Options) error {
	if fillAnglesRaw == "" {
		return nil
	}
	parts := strings.Split(fillAnglesRaw, ",")
	angles := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return err
		}
		angles = append(angles, v)
	}
	o.Print.FillAngles = angles
	return nil
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

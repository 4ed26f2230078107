// Package config defines the engine's configuration surface, grouped
// the way the teacher groups data.Options into Printer/Print/Filament
// sub-structs.
package config

import (
	"log"
	"os"
)

// Printer holds fixed machine geometry.
type Printer struct {
	NozzleDiameter   float64 // mm
	FilamentDiameter float64 // mm, reserved for a future E-volume mode
}

// Print holds the per-job slicing and motion parameters.
type Print struct {
	LayerHeight float64 // mm

	Perimeters    int
	InfillDensity float64 // percent, may exceed 100
	FillAngles    []float64
	SolidOverlap  float64 // fraction of nozzle diameter

	SmallFeature      float64 // mm^2
	XYCompensation    float64 // signed mm
	SimplifyTolerance float64 // mm

	BottomLayers int
	TopLayers    int

	TravelSpeed     float64 // mm/s
	PrintSpeed      float64 // mm/s
	OuterWallSpeed  float64 // mm/s
	InfillSpeed     float64 // mm/s
}

// Filament holds temperature targets.
type Filament struct {
	PrintTemp int // degrees C
	BedTemp   int // degrees C
}

// Retraction groups the retraction settings. The writer emits no
// retraction G-code and no Z-hop between paths; ZHop is used only for
// the raise move at the start of each layer (G0 Z<z+ZHop>).
type Retraction struct {
	Amount float64 // mm
	Speed  float64 // mm/s
	ZHop   float64 // mm
}

// Skirt configures the supplemental priming-skirt feature (SPEC_FULL.md
// §5). Disabled by default, in which case engine output is exactly the
// spec.md-described behavior.
type Skirt struct {
	Enabled  bool
	Loops    int
	Distance float64 // mm, gap from the first layer's footprint
}

// Options is the full, immutable-for-a-job configuration surface.
type Options struct {
	Printer    Printer
	Print      Print
	Filament   Filament
	Retraction Retraction
	Skirt      Skirt

	// Logger receives one line per pipeline stage on completion, the
	// way goslice.go's Process() logs through s.Options.Logger.
	Logger *log.Logger
}

// Default returns an Options populated with reasonable defaults,
// matching the settings dict in the original Slicer-TGBot.py source.
func Default() *Options {
	return &Options{
		Printer: Printer{
			NozzleDiameter:   0.4,
			FilamentDiameter: 1.75,
		},
		Print: Print{
			LayerHeight:       0.2,
			Perimeters:        3,
			InfillDensity:     20,
			FillAngles:        []float64{45, 135},
			SolidOverlap:      0.3,
			SmallFeature:      0.1,
			XYCompensation:    0,
			SimplifyTolerance: 0.02,
			BottomLayers:      3,
			TopLayers:         3,
			TravelSpeed:       150,
			PrintSpeed:        50,
			OuterWallSpeed:    30,
			InfillSpeed:       80,
		},
		Filament: Filament{
			PrintTemp: 200,
			BedTemp:   60,
		},
		Retraction: Retraction{
			Amount: 5,
			Speed:  40,
			ZHop:   0.2,
		},
		Skirt: Skirt{
			Enabled:  false,
			Loops:    1,
			Distance: 5,
		},
		Logger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

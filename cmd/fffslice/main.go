// Command fffslice is the CLI adapter around the slicer engine: it
// parses flags into config.Options and calls Engine.Process with the
// two file paths it was given, the same shape as the teacher's
// cmd/goslice/slicer.go main package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"fffslice"
	"fffslice/config"
)

func main() {
	opts := config.FlagSet(pflag.CommandLine)
	pflag.Parse()

	if err := config.ResolveFillAngles(opts); err != nil {
		fmt.Fprintln(os.Stderr, "invalid --fill-angles:", err)
		os.Exit(2)
	}

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: fffslice [flags] <input.stl> [output.gcode]")
		os.Exit(2)
	}

	inputPath := args[0]
	outputPath := inputPath + ".gcode"
	if len(args) >= 2 {
		outputPath = args[1]
	}

	engine := fffslice.NewEngine(opts)
	if err := engine.Process(inputPath, outputPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

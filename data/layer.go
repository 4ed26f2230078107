package data

// Section is the raw result of intersecting a mesh with one horizontal
// plane: an unordered bag of 2D segments, tagged with the pre-skip
// layer index and the machine-Z it came from. Index/Solid travel with
// the section rather than being recomputed downstream, since skipped
// (empty) sections must still count toward bottom/top-layer
// classification (spec: classification uses the pre-skip index).
type Section struct {
	Index    int
	Z        Millimeter
	Segments []Segment
	Solid    bool
}

// Layer is one emitted printable slice: a nominal bottom-of-layer
// height plus its ordered wall loops and infill lines. Ordering within
// Walls is outer-to-inner; ordering within Infill is by region polygon,
// then fill-angle, then scan-line position.
type Layer struct {
	Z      Millimeter
	Walls  Paths
	Infill Paths

	// Skirt holds the supplemental priming-skirt loops (SPEC_FULL.md
	// §5), populated only on the first emitted layer and only when
	// config.Skirt.Enabled. Empty otherwise, in which case the writer's
	// output is exactly the spec.md-described behavior.
	Skirt Paths
}

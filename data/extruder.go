package data

// ExtruderState is the single piece of state shared across an entire
// job: the cumulative extruded filament length. It is zeroed at job
// start and never reset between layers.
type ExtruderState struct {
	currentE float64
}

// Reset zeroes the counter. Called (through gcode.Builder.Reset) at the
// start of every gcode Writer.Write, so repeated (*Engine).Process calls
// on the same engine instance are idempotent.
func (e *ExtruderState) Reset() {
	e.currentE = 0
}

// Advance increments the counter by delta and returns the new
// cumulative value.
func (e *ExtruderState) Advance(delta float64) float64 {
	e.currentE += delta
	return e.currentE
}

// Current returns the cumulative extruded length without mutating it.
func (e *ExtruderState) Current() float64 {
	return e.currentE
}

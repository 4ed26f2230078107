package data

import "testing"

func TestSimplifyRemovesCollinearPoint(t *testing.T) {
	p := Path{{X: 0, Y: 0}, {X: 5, Y: 0.001}, {X: 10, Y: 0}}
	out := p.Simplify(0.01)
	if len(out) != 2 {
		t.Fatalf("Simplify() len = %d, want 2, got %+v", len(out), out)
	}
}

func TestSimplifyKeepsSignificantDeviation(t *testing.T) {
	p := Path{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}}
	out := p.Simplify(0.01)
	if len(out) != 3 {
		t.Fatalf("Simplify() removed a significant vertex, len = %d, want 3", len(out))
	}
}

func TestSimplifyShortPathUntouched(t *testing.T) {
	p := Path{{X: 0, Y: 0}, {X: 1, Y: 1}}
	out := p.Simplify(0.01)
	if len(out) != 2 {
		t.Errorf("Simplify() on a 2-point path len = %d, want 2", len(out))
	}
}

func TestSimplifyZeroToleranceNoOp(t *testing.T) {
	p := Path{{X: 0, Y: 0}, {X: 5, Y: 0.001}, {X: 10, Y: 0}}
	out := p.Simplify(0)
	if len(out) != len(p) {
		t.Errorf("Simplify(0) len = %d, want %d (no-op)", len(out), len(p))
	}
}

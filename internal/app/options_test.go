package app

import "testing"

func TestOptionsScaleDefaultsToOne(t *testing.T) {
	for _, s := range []float64{0, -2} {
		if got := (Options{Scale: s}).scale(); got != 1 {
			t.Fatalf("scale %v: expected 1, got %v", s, got)
		}
	}
	if got := (Options{Scale: 0.5}).scale(); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

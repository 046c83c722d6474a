package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval: %v", fs.Interval())
	}
	t0 := time.Unix(1000, 0)

	if n := fs.Due(t0); n != 1 {
		t.Fatalf("first call: %d ticks, want 1", n)
	}
	if n := fs.Due(t0.Add(50 * time.Millisecond)); n != 0 {
		t.Fatalf("half interval: %d ticks", n)
	}
	if n := fs.Due(t0.Add(100 * time.Millisecond)); n != 1 {
		t.Fatalf("full interval: %d ticks", n)
	}
	if n := fs.Due(t0.Add(350 * time.Millisecond)); n != 2 {
		t.Fatalf("two and a half intervals: %d ticks", n)
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	fs := NewFixedStep(60)
	t0 := time.Unix(0, 0)
	fs.Due(t0)
	if n := fs.Due(t0.Add(10 * time.Second)); n != maxCatchUp {
		t.Fatalf("stall: %d ticks, want %d", n, maxCatchUp)
	}
	if n := fs.Due(t0.Add(10*time.Second + time.Millisecond)); n != 0 {
		t.Fatalf("backlog not dropped: %d ticks", n)
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	if NewFixedStep(0).Interval() != time.Second/60 {
		t.Fatal("non-positive tps should fall back to 60")
	}
}

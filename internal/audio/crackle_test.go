package audio

import (
	"testing"
	"time"

	"doomfire/internal/sims/fire"
)

func stream(c *Crackle, n int) [][2]float64 {
	samples := make([][2]float64, n)
	got, ok := c.Stream(samples)
	if got != n || !ok {
		panic("crackle stream ended")
	}
	return samples
}

func TestCrackleSilentUntilIgnited(t *testing.T) {
	c := NewCrackle(SampleRate, 1)
	for i, s := range stream(c, 512) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d not silent: %v", i, s)
		}
	}
	c.Ignite(0)
	c.Ignite(-3)
	if c.Energy() != 0 {
		t.Fatalf("non-positive ignitions added energy: %v", c.Energy())
	}
}

func TestCrackleAfterIgnition(t *testing.T) {
	c := NewCrackle(SampleRate, 7)
	c.Observe(fire.Stats{Ignitions: 5})
	if e := c.Energy(); e < 0.39 || e > 0.41 {
		t.Fatalf("expected energy 0.4 after five ignitions, got %v", e)
	}

	loud := 0
	for i, s := range stream(c, 1024) {
		if s[0] < -1 || s[0] > 1 {
			t.Fatalf("sample %d out of range: %v", i, s[0])
		}
		if s[0] != s[1] {
			t.Fatalf("sample %d channels differ", i)
		}
		if s[0] != 0 {
			loud++
		}
	}
	if loud == 0 {
		t.Fatal("expected audible samples after ignition")
	}
}

func TestCrackleDecays(t *testing.T) {
	c := NewCrackle(SampleRate, 3)
	c.Ignite(100)
	if c.Energy() != maxEnergy {
		t.Fatalf("energy not capped: %v", c.Energy())
	}
	stream(c, SampleRate.N(halfLife))
	if e := c.Energy(); e < 0.49 || e > 0.51 {
		t.Fatalf("expected energy to halve after one half-life, got %v", e)
	}
	stream(c, SampleRate.N(time.Second))
	if c.Energy() != 0 {
		t.Fatalf("expected silence after a second, got %v", c.Energy())
	}
}

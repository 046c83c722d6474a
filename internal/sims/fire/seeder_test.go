package fire

import (
	"testing"

	"doomfire/internal/core"
)

func TestSeedFlamesLeavesEdgeColumnsUntouched(t *testing.T) {
	g := core.NewHeatGrid(6, 3)
	g.Set(0, 2, 3)
	g.Set(5, 2, 250)

	p := DefaultConfig().Params
	src := &scriptedSource{fallback: igniteDraw}
	for i := 0; i < 20; i++ {
		seedFlames(g, src, p)
		if g.Get(0, 2) != 3 || g.Get(5, 2) != 250 {
			t.Fatalf("iteration %d: edges changed to %d and %d", i, g.Get(0, 2), g.Get(5, 2))
		}
	}
}

func TestSeedFlamesEmberFloor(t *testing.T) {
	g := core.NewHeatGrid(5, 3)
	row := g.Row(2)
	copy(row, []uint8{0, 0, 9, 40, 0})

	n := seedFlames(g, &scriptedSource{fallback: emberDraw}, DefaultConfig().Params)

	if n != 0 {
		t.Fatalf("ignitions: got %d, want 0", n)
	}
	want := []uint8{0, 14, 14, 40, 0}
	for x, w := range want {
		if row[x] != w {
			t.Fatalf("column %d: got %d, want %d", x, row[x], w)
		}
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			if g.Get(x, y) != 0 {
				t.Fatalf("seeding wrote above the bottom row at (%d,%d)", x, y)
			}
		}
	}
}

func TestSeedFlamesIgnition(t *testing.T) {
	g := core.NewHeatGrid(5, 3)
	g.Set(2, 2, 200)
	// column 1 ignites at the flare floor, column 2 ignites near the top,
	// column 3 stays an ember.
	src := &scriptedSource{script: []float64{igniteDraw, 0, igniteDraw, 0.999, emberDraw}}

	n := seedFlames(g, src, DefaultConfig().Params)

	if n != 2 {
		t.Fatalf("ignitions: got %d, want 2", n)
	}
	if got := g.Get(1, 2); got != 128 {
		t.Fatalf("column 1: got %d, want 128", got)
	}
	if got := g.Get(2, 2); got != 255 {
		t.Fatalf("column 2: got %d, want 255", got)
	}
	if got := g.Get(3, 2); got != 14 {
		t.Fatalf("column 3: got %d, want 14", got)
	}
	if src.calls != 5 {
		t.Fatalf("draws: got %d, want one per column plus one per ignition (5)", src.calls)
	}
}

func TestSeedFlamesDrawsOncePerInteriorColumn(t *testing.T) {
	for _, w := range []int{3, 4, 17, 140} {
		g := core.NewHeatGrid(w, 3)
		src := &scriptedSource{fallback: emberDraw}
		seedFlames(g, src, DefaultConfig().Params)
		if src.calls != w-2 {
			t.Fatalf("width %d: got %d draws, want %d", w, src.calls, w-2)
		}
	}
}

func TestSeedFlamesFloorProperty(t *testing.T) {
	g := core.NewHeatGrid(64, 4)
	rng := core.NewRNG(5)
	p := DefaultConfig().Params
	for tick := 0; tick < 500; tick++ {
		shiftUp(g)
		seedFlames(g, rng, p)
		row := g.Row(g.H - 1)
		for x := 1; x < g.W-1; x++ {
			if row[x] < 14 {
				t.Fatalf("tick %d column %d: %d below ember floor", tick, x, row[x])
			}
			if row[x] != 14 && row[x] < 128 {
				t.Fatalf("tick %d column %d: %d is neither ember nor flare", tick, x, row[x])
			}
		}
	}
}

func TestSeedFlamesClampsMisbehavingSource(t *testing.T) {
	p := DefaultConfig().Params

	g := core.NewHeatGrid(3, 3)
	seedFlames(g, rawSource{v: -5}, p)
	if got := g.Get(1, 2); got != 128 {
		t.Fatalf("low draw: got %d, want flare_min 128", got)
	}

	g = core.NewHeatGrid(3, 3)
	seedFlames(g, rawSource{v: 1e9}, p)
	if got := g.Get(1, 2); got != 14 {
		t.Fatalf("high draw: got %d, want ember floor 14", got)
	}
}

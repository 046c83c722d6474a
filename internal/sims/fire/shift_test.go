package fire

import (
	"testing"

	"doomfire/internal/core"
)

func TestShiftUpMovesRowsAndZeroFillsBottom(t *testing.T) {
	g := core.NewHeatGrid(4, 5)
	for i := range g.Cells() {
		g.Cells()[i] = uint8(i + 1)
	}
	old := core.NewHeatGrid(4, 5)
	copy(old.Cells(), g.Cells())

	shiftUp(g)

	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H-1; y++ {
			if got, want := g.Get(x, y), old.Get(x, y+1); got != want {
				t.Fatalf("cell (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
		if got := g.Get(x, g.H-1); got != 0 {
			t.Fatalf("bottom cell %d: got %d, want 0", x, got)
		}
	}
}

func TestShiftUpRepeatedlyEmptiesGrid(t *testing.T) {
	g := core.NewHeatGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i] = 200
	}
	for i := 0; i < g.H; i++ {
		shiftUp(g)
	}
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d: got %d after %d shifts", i, v, g.H)
		}
	}
}

package fire

import "doomfire/internal/core"

// shiftUp moves every row up by one in place, dropping the top row and
// zero-filling the bottom row.
func shiftUp(g *core.HeatGrid) {
	cells := g.Cells()
	w := g.W
	copy(cells, cells[w:])
	bottom := cells[len(cells)-w:]
	for i := range bottom {
		bottom[i] = 0
	}
}

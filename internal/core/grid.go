package core

import "fmt"

// HeatGrid stores a 2D grid of byte-sized heat values in row-major order.
type HeatGrid struct {
	W, H int
	data []uint8
}

// NewHeatGrid allocates an all-zero grid with the given dimensions.
func NewHeatGrid(w, h int) *HeatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &HeatGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Width returns the number of columns.
func (g *HeatGrid) Width() int { return g.W }

// Height returns the number of rows.
func (g *HeatGrid) Height() int { return g.H }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *HeatGrid) Cells() []uint8 { return g.data }

// Row returns the slice backing row y.
func (g *HeatGrid) Row(y int) []uint8 {
	g.check(0, y)
	return g.data[y*g.W : (y+1)*g.W]
}

// Get returns the heat at (x, y). Out-of-range coordinates panic.
func (g *HeatGrid) Get(x, y int) uint8 {
	g.check(x, y)
	return g.data[y*g.W+x]
}

// Set stores v at (x, y). Out-of-range coordinates panic.
func (g *HeatGrid) Set(x, y int, v uint8) {
	g.check(x, y)
	g.data[y*g.W+x] = v
}

// Clear fills the grid with zeros.
func (g *HeatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// check bounds x by the row width, not the slice length.
func (g *HeatGrid) check(x, y int) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}

package render

import "doomfire/internal/sims/fire"

// CellBuffer is a fire.Surface with one color per text cell. Pixel
// coordinates are divided by the tile geometry, so a renderer using the same
// tiles fills exactly one cell per grid cell.
type CellBuffer struct {
	cols, rows int
	tileW      int
	tileH      int
	cells      []fire.RGB
}

var _ fire.Surface = (*CellBuffer)(nil)

// NewCellBuffer allocates cols*rows cells for the given tile geometry.
func NewCellBuffer(cols, rows, tileW, tileH int) *CellBuffer {
	if tileW < 1 {
		tileW = 1
	}
	if tileH < 1 {
		tileH = 1
	}
	return &CellBuffer{
		cols:  cols,
		rows:  rows,
		tileW: tileW,
		tileH: tileH,
		cells: make([]fire.RGB, cols*rows),
	}
}

// Size returns the buffer dimensions in cells.
func (b *CellBuffer) Size() (int, int) { return b.cols, b.rows }

// At returns the color of cell (col, row).
func (b *CellBuffer) At(col, row int) fire.RGB {
	return b.cells[row*b.cols+col]
}

// Clear paints every cell with c.
func (b *CellBuffer) Clear(c fire.RGB) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// FillRect paints every cell the pixel rectangle touches.
func (b *CellBuffer) FillRect(c fire.RGB, x0, y0, x1, y1 int) {
	c0 := max(x0/b.tileW, 0)
	r0 := max(y0/b.tileH, 0)
	c1 := min((x1+b.tileW-1)/b.tileW, b.cols)
	r1 := min((y1+b.tileH-1)/b.tileH, b.rows)
	for r := r0; r < r1; r++ {
		row := b.cells[r*b.cols : (r+1)*b.cols]
		for col := c0; col < c1; col++ {
			row[col] = c
		}
	}
}

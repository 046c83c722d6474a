package fire

import "doomfire/internal/core"

// Surface is the drawing capability a host provides. Coordinates are pixel
// corners; a rectangle covers [x0, x1) × [y0, y1).
type Surface interface {
	Clear(c RGB)
	FillRect(c RGB, x0, y0, x1, y1 int)
}

// Renderer paints a heat grid through a palette, one rectangle per cell.
type Renderer struct {
	palette    Palette
	tileWidth  int
	tileHeight int
}

// NewRenderer returns a renderer using the given palette and tile geometry.
func NewRenderer(p Palette, tileWidth, tileHeight int) *Renderer {
	return &Renderer{palette: p, tileWidth: tileWidth, tileHeight: tileHeight}
}

// Render clears s once and fills every cell's tile with its palette color.
// It never mutates the grid.
func (r *Renderer) Render(g *core.HeatGrid, s Surface) {
	s.Clear(Black)
	tw, th := r.tileWidth, r.tileHeight
	for y := 0; y < g.H; y++ {
		row := g.Row(y)
		y0 := y * th
		for x, v := range row {
			s.FillRect(r.palette.ColorFor(int(v)), x*tw, y0, (x+1)*tw, y0+th)
		}
	}
}

//go:build ebiten

package render

import (
	"doomfire/internal/sims/fire"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter renders a fire into an offscreen ebiten image.
type GridPainter struct {
	surface *ImageSurface
	img     *ebiten.Image
}

// NewGridPainter allocates a painter for a surface of w*h pixels.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{surface: NewImageSurface(w, h), img: ebiten.NewImage(w, h)}
}

// Blit renders f, uploads the pixels and draws them onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, f *fire.Fire, scale float64) {
	f.Render(gp.surface)
	gp.img.WritePixels(gp.surface.Pix())

	op := &ebiten.DrawImageOptions{}
	if scale > 0 && scale != 1 {
		op.GeoM.Scale(scale, scale)
	}
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.surface.Size() }

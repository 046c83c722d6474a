package render

import (
	"image"

	"doomfire/internal/sims/fire"
)

// ImageSurface is a fire.Surface backed by an RGBA pixel buffer. It is used
// by the ebiten painter and by the recorders.
type ImageSurface struct {
	img *image.RGBA
}

var _ fire.Surface = (*ImageSurface)(nil)

// NewImageSurface allocates a w*h surface cleared to transparent black.
func NewImageSurface(w, h int) *ImageSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Pix exposes the raw RGBA bytes in row-major order.
func (s *ImageSurface) Pix() []byte { return s.img.Pix }

// Size returns the pixel dimensions.
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear paints every pixel with c.
func (s *ImageSurface) Clear(c fire.RGB) {
	w, h := s.Size()
	s.FillRect(c, 0, 0, w, h)
}

// FillRect paints [x0,x1) × [y0,y1), clipped to the surface.
func (s *ImageSurface) FillRect(c fire.RGB, x0, y0, x1, y1 int) {
	r := image.Rect(x0, y0, x1, y1).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	buf := s.img.Pix
	stride := s.img.Stride
	width := r.Dx() * 4

	// Paint the first row pixel by pixel, then copy it down.
	first := r.Min.Y*stride + r.Min.X*4
	row := buf[first : first+width]
	for i := 0; i < width; i += 4 {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = 0xff
	}
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		base := y*stride + r.Min.X*4
		copy(buf[base:base+width], row)
	}
}

package record

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"
)

// GIFEncoder buffers paletted frames and writes the animation on Close.
type GIFEncoder struct {
	path    string
	palette color.Palette
	delay   int
	anim    gif.GIF
}

// NewGIF writes to path using pal as the global color table.
func NewGIF(path string, pal color.Palette, delay int) *GIFEncoder {
	if delay <= 0 {
		delay = 1
	}
	return &GIFEncoder{path: path, palette: pal, delay: delay}
}

func (e *GIFEncoder) AddFrame(img *image.RGBA) error {
	pm := image.NewPaletted(img.Bounds(), e.palette)
	draw.Draw(pm, pm.Rect, img, img.Bounds().Min, draw.Src)
	e.anim.Image = append(e.anim.Image, pm)
	e.anim.Delay = append(e.anim.Delay, e.delay)
	return nil
}

func (e *GIFEncoder) Close() error {
	out, err := os.Create(e.path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(out, &e.anim); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

package fire

import "image/color"

const (
	// RampLength is the number of hand-authored colors at the start of every palette.
	RampLength = 64
	// DefaultPaletteLength pads the ramp with white up to one entry per byte value.
	DefaultPaletteLength = 256

	maxHeat = 255
)

// RGB is an 8-bit per channel opaque color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Opaque converts the triple to an opaque color.RGBA.
func (c RGB) Opaque() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

var (
	// Black is palette entry zero and the clear color.
	Black = RGB{}
	// White pads the palette past the ramp.
	White = RGB{R: 255, G: 255, B: 255}
)

// ramp runs from black through dark blue-greens and reds to yellow.
var ramp = [RampLength]RGB{
	{0, 0, 0}, {0, 4, 4}, {0, 16, 20}, {0, 28, 36},
	{0, 32, 44}, {0, 36, 48}, {60, 24, 32}, {100, 16, 16},
	{132, 12, 12}, {160, 8, 8}, {192, 8, 8}, {220, 4, 4},
	{252, 0, 0}, {252, 0, 0}, {252, 12, 0}, {252, 28, 0},
	{252, 40, 0}, {252, 52, 0}, {252, 64, 0}, {252, 80, 0},
	{252, 92, 0}, {252, 104, 0}, {252, 116, 0}, {252, 132, 0},
	{252, 144, 0}, {252, 156, 0}, {252, 156, 0}, {252, 160, 0},
	{252, 160, 0}, {252, 164, 0}, {252, 168, 0}, {252, 168, 0},
	{252, 172, 0}, {252, 176, 0}, {252, 176, 0}, {252, 180, 0},
	{252, 180, 0}, {252, 184, 0}, {252, 188, 0}, {252, 188, 0},
	{252, 192, 0}, {252, 196, 0}, {252, 196, 0}, {252, 200, 0},
	{252, 204, 0}, {252, 204, 0}, {252, 208, 0}, {252, 212, 0},
	{252, 212, 0}, {252, 216, 0}, {252, 220, 0}, {252, 220, 0},
	{252, 224, 0}, {252, 228, 0}, {252, 228, 0}, {252, 232, 0},
	{252, 232, 0}, {252, 236, 0}, {252, 240, 0}, {252, 240, 0},
	{252, 244, 0}, {252, 248, 0}, {252, 248, 0}, {252, 252, 0},
}

// Palette maps heat levels to colors. It is immutable once built.
type Palette struct {
	colors []RGB
}

// BuildPalette returns the authored ramp followed by n-RampLength white entries.
func BuildPalette(n int) (Palette, error) {
	if n < RampLength {
		return Palette{}, invalid("palette_length", n, "must hold the %d ramp colors", RampLength)
	}
	colors := make([]RGB, n)
	copy(colors, ramp[:])
	for i := RampLength; i < n; i++ {
		colors[i] = White
	}
	return Palette{colors: colors}, nil
}

// Len returns the number of entries.
func (p Palette) Len() int { return len(p.colors) }

// ColorFor returns the color of heat level v. v must be in [0, Len()).
func (p Palette) ColorFor(v int) RGB {
	return p.colors[v]
}

// Colors returns a copy of the entries.
func (p Palette) Colors() []RGB {
	return append([]RGB(nil), p.colors...)
}

// ColorPalette returns the first 256 entries as an image/color palette, the
// most a GIF color table can hold.
func (p Palette) ColorPalette() color.Palette {
	n := len(p.colors)
	if n > 256 {
		n = 256
	}
	out := make(color.Palette, n)
	for i := 0; i < n; i++ {
		out[i] = p.colors[i].Opaque()
	}
	return out
}

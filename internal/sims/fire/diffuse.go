package fire

import "doomfire/internal/core"

// blurVertical writes into dst the 3-tap column average of src. The top and
// bottom rows double their own weight in place of the missing neighbour.
// src and dst must be distinct grids of the same size.
func blurVertical(dst, src *core.HeatGrid) {
	w, h := src.W, src.H
	in, out := src.Cells(), dst.Cells()

	last := (h - 1) * w
	for x := 0; x < w; x++ {
		out[x] = uint8((2*int(in[x]) + int(in[w+x])) / 3)
		out[last+x] = uint8((int(in[last-w+x]) + 2*int(in[last+x])) / 3)
	}
	for y := 1; y < h-1; y++ {
		above, row, below := (y-1)*w, y*w, (y+1)*w
		for x := 0; x < w; x++ {
			out[row+x] = uint8((int(in[above+x]) + int(in[row+x]) + int(in[below+x])) / 3)
		}
	}
}

// blurHorizontal is blurVertical along rows, with the left and right columns
// doubling their own weight.
func blurHorizontal(dst, src *core.HeatGrid) {
	w, h := src.W, src.H
	in, out := src.Cells(), dst.Cells()

	for y := 0; y < h; y++ {
		base := y * w
		out[base] = uint8((2*int(in[base]) + int(in[base+1])) / 3)
		for x := 1; x < w-1; x++ {
			i := base + x
			out[i] = uint8((int(in[i-1]) + int(in[i]) + int(in[i+1])) / 3)
		}
		end := base + w - 1
		out[end] = uint8((int(in[end-1]) + 2*int(in[end])) / 3)
	}
}

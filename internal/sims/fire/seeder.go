package fire

import "doomfire/internal/core"

// RandomSource draws uniformly distributed floats in [low, high).
type RandomSource interface {
	Uniform(low, high float64) float64
}

// drawInt truncates a draw in [low, high) to an int, clamping whatever a
// misbehaving source returns back into the interval.
func drawInt(rng RandomSource, low, high int) int {
	v := int(rng.Uniform(float64(low), float64(high)))
	if v < low {
		return low
	}
	if v >= high {
		return high - 1
	}
	return v
}

// seedFlames repopulates the bottom row, columns 1..w-2 left to right. Each
// column makes a weighted choice: with probability 1/IgnitionOdds it ignites
// to a fresh flare in [FlareMin, FlareMax), otherwise it is raised to at
// least EmberFloor. The two edge columns are never written. It returns the
// number of ignitions.
func seedFlames(g *core.HeatGrid, rng RandomSource, p Params) int {
	row := g.Row(g.H - 1)
	floor := uint8(p.EmberFloor)
	ignitions := 0
	for x := 1; x < g.W-1; x++ {
		if drawInt(rng, 0, p.IgnitionOdds) == 0 {
			row[x] = uint8(drawInt(rng, p.FlareMin, p.FlareMax))
			ignitions++
			continue
		}
		if row[x] < floor {
			row[x] = floor
		}
	}
	return ignitions
}

package fire

// Stats summarises the grid after a tick.
type Stats struct {
	Tick      uint64
	Ignitions int
	Mean      float64
	Max       uint8
	Lit       int
}

func measure(cells []uint8) (mean float64, peak uint8, lit int) {
	if len(cells) == 0 {
		return 0, 0, 0
	}
	sum := 0
	for _, v := range cells {
		sum += int(v)
		if v > peak {
			peak = v
		}
		if v != 0 {
			lit++
		}
	}
	return float64(sum) / float64(len(cells)), peak, lit
}

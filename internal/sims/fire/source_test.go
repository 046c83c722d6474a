package fire

// scriptedSource replays fractions of the requested interval: a draw of f
// over [low, high) returns low + f*(high-low). Once the script is exhausted
// it keeps returning fallback.
type scriptedSource struct {
	script   []float64
	fallback float64
	calls    int
}

func (s *scriptedSource) Uniform(low, high float64) float64 {
	f := s.fallback
	if s.calls < len(s.script) {
		f = s.script[s.calls]
	}
	s.calls++
	return low + f*(high-low)
}

// rawSource returns fixed values regardless of the requested interval.
type rawSource struct{ v float64 }

func (r rawSource) Uniform(low, high float64) float64 { return r.v }

const (
	emberDraw  = 0.5 // truncates to a non-zero branch draw
	igniteDraw = 0.0 // truncates to the ignition branch
)

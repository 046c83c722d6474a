package record

import (
	"fmt"
	"io"

	"doomfire/internal/sims/fire"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// History is a per-tick log of fire statistics.
type History struct {
	Ticks []float64
	Mean  []float64
	Max   []float64
}

func NewHistory() *History { return &History{} }

// Add appends one tick of stats.
func (h *History) Add(s fire.Stats) {
	h.Ticks = append(h.Ticks, float64(s.Tick))
	h.Mean = append(h.Mean, s.Mean)
	h.Max = append(h.Max, float64(s.Max))
}

func (h *History) Len() int { return len(h.Ticks) }

// WriteChart renders mean and peak heat against tick as a PNG.
func (h *History) WriteChart(w io.Writer, width, height int) error {
	if h.Len() < 2 {
		return fmt.Errorf("record: need at least 2 ticks to chart, have %d", h.Len())
	}
	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "heat",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: 255},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "mean heat",
				XValues: h.Ticks,
				YValues: h.Mean,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 255, G: 165, B: 0, A: 255}, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "peak heat",
				XValues: h.Ticks,
				YValues: h.Max,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 1.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

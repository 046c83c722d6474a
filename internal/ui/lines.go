package ui

import (
	"fmt"
	"strconv"

	"doomfire/internal/core"
	"doomfire/internal/sims/fire"
)

// KeyHelp is the key legend shared by the interactive drivers.
const KeyHelp = "space pause  n step  r reset  s reseed  h hud  q quit"

const labelWidth = 20

// Lines formats the parameters of p followed by live stats as panel rows.
// Group names are flush left, their entries indented beneath.
func Lines(p core.ParameterProvider, st fire.Stats) []string {
	var out []string
	for _, g := range p.Parameters().Groups {
		out = append(out, g.Name)
		for _, p := range g.Params {
			out = append(out, row(p.Label, p.Value))
		}
	}
	out = append(out,
		"Live",
		row("Tick", strconv.FormatUint(st.Tick, 10)),
		row("Mean heat", strconv.FormatFloat(st.Mean, 'f', 1, 64)),
		row("Peak heat", strconv.Itoa(int(st.Max))),
		row("Lit cells", strconv.Itoa(st.Lit)),
		row("Ignitions", strconv.Itoa(st.Ignitions)),
	)
	return out
}

// StatusLine is the one-row summary used when the full panel is hidden.
func StatusLine(name string, st fire.Stats, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  tick %d  mean %.1f  peak %d  %s", name, st.Tick, st.Mean, st.Max, state)
}

func row(label, value string) string {
	return fmt.Sprintf("  %-*s %s", labelWidth, label, value)
}

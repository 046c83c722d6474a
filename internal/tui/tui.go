// Package tui renders the fire inside a bubbletea program using half-block
// characters, two grid rows per terminal row.
package tui

import (
	"fmt"
	"strings"
	"time"

	"doomfire/internal/render"
	"doomfire/internal/sims/fire"
	"doomfire/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const historyCapacity = 60

var (
	panelStyle = lipgloss.NewStyle().PaddingLeft(2)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Options configures the bubbletea driver.
type Options struct {
	TPS    int
	Seed   int64
	HUD    bool
	OnStep func(fire.Stats)
}

type tickMsg time.Time

type model struct {
	ctl      *ui.Controller
	cells    *render.CellBuffer
	interval time.Duration
	history  []float64
	styles   map[[2]fire.RGB]lipgloss.Style
}

// NewModel wraps f in a bubbletea model.
func NewModel(f *fire.Fire, opts Options) tea.Model {
	tps := opts.TPS
	if tps <= 0 {
		tps = 30
	}
	cfg := f.Config()
	return model{
		ctl:      ui.NewController(f, opts.Seed, opts.HUD, opts.OnStep),
		cells:    render.NewCellBuffer(cfg.Width, cfg.Height, cfg.TileWidth, cfg.TileHeight),
		interval: time.Second / time.Duration(tps),
		history:  make([]float64, 0, historyCapacity),
		styles:   map[[2]fire.RGB]lipgloss.Style{},
	}
}

// Run starts the program on the alternate screen.
func Run(f *fire.Fire, opts Options) error {
	p := tea.NewProgram(NewModel(f, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			r := ' '
			if len(msg.Runes) > 0 {
				r = msg.Runes[0]
			}
			if m.ctl.Apply(ui.ActionForRune(r)) {
				return m, tea.Quit
			}
		}
		return m, nil
	case tickMsg:
		if m.ctl.Advance(1) > 0 {
			m.history = append(m.history, m.ctl.Fire().Stats().Mean)
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) View() string {
	view := m.fireView()
	if !m.ctl.ShowHUD() {
		return view
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, view, panelStyle.Render(m.panel()))
}

func (m model) fireView() string {
	f := m.ctl.Fire()
	f.Render(m.cells)
	cols, rows := m.cells.Size()
	var b strings.Builder
	for y := 0; y < rows; y += 2 {
		for x := 0; x < cols; x++ {
			top := m.cells.At(x, y)
			bottom := fire.Black
			if y+1 < rows {
				bottom = m.cells.At(x, y+1)
			}
			b.WriteString(m.style(top, bottom).Render("▀"))
		}
		if y+2 < rows {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m model) style(top, bottom fire.RGB) lipgloss.Style {
	key := [2]fire.RGB{top, bottom}
	if s, ok := m.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bottom))
	m.styles[key] = s
	return s
}

func (m model) panel() string {
	f := m.ctl.Fire()
	var b strings.Builder
	b.WriteString(titleStyle.Render(ui.StatusLine("fire", f.Stats(), m.ctl.Paused())) + "\n\n")
	if len(m.history) >= 2 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("mean heat"))
		b.WriteString(graphStyle.Render(chart) + "\n\n")
	}
	for _, line := range ui.Lines(f, f.Stats()) {
		b.WriteString(textStyle.Render(line) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render(ui.KeyHelp))
	return b.String()
}

func hex(c fire.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Package term drives the fire in a full-screen terminal, one character
// cell per grid cell.
package term

import (
	"context"
	"time"

	"doomfire/internal/core"
	"doomfire/internal/render"
	"doomfire/internal/sims/fire"
	"doomfire/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// Options configures the terminal driver.
type Options struct {
	TPS    int
	Seed   int64
	HUD    bool
	Fit    bool
	OnStep func(fire.Stats)
	// Build constructs the fire on start and resize. Nil means fire.New.
	Build func(fire.Config) (*fire.Fire, error)
}

// Driver paints a fire onto a tcell screen.
type Driver struct {
	screen tcell.Screen
	cfg    fire.Config
	opts   Options

	ctl   *ui.Controller
	cells *render.CellBuffer
	clock *core.FixedStep
}

// New builds a driver on an initialised screen. With opts.Fit the grid is
// sized to the screen instead of cfg.
func New(screen tcell.Screen, cfg fire.Config, opts Options) (*Driver, error) {
	d := &Driver{screen: screen, cfg: cfg, opts: opts, clock: core.NewFixedStep(opts.TPS)}
	if err := d.rebuild(opts.HUD); err != nil {
		return nil, err
	}
	return d, nil
}

// Run opens the terminal, drives the fire until the user quits or ctx is
// done, and restores the terminal.
func Run(ctx context.Context, cfg fire.Config, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	d, err := New(screen, cfg, opts)
	if err != nil {
		return err
	}
	return d.Loop(ctx)
}

// FitConfig resizes cfg to a cols*rows terminal, leaving a row for the
// status line.
func FitConfig(cfg fire.Config, cols, rows int) fire.Config {
	cfg.Width = max(cols, fire.MinGridSize)
	cfg.Height = max(rows-1, fire.MinGridSize)
	return cfg
}

func (d *Driver) rebuild(showHUD bool) error {
	cfg := d.cfg
	if d.opts.Fit {
		cols, rows := d.screen.Size()
		cfg = FitConfig(cfg, cols, rows)
	}
	build := d.opts.Build
	if build == nil {
		build = fire.New
	}
	f, err := build(cfg)
	if err != nil {
		return err
	}
	seed := d.opts.Seed
	if d.ctl != nil {
		seed = d.ctl.Seed()
	}
	d.ctl = ui.NewController(f, seed, showHUD, d.opts.OnStep)
	d.ctl.Reset(seed)
	d.cells = render.NewCellBuffer(cfg.Width, cfg.Height, cfg.TileWidth, cfg.TileHeight)
	return nil
}

// Fire returns the fire currently being driven.
func (d *Driver) Fire() *fire.Fire { return d.ctl.Fire() }

// Loop runs the event and tick loop.
func (d *Driver) Loop(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.clock.Interval())
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			done, err := d.Handle(ev)
			if err != nil || done {
				return err
			}
			d.Draw()
		case now := <-ticker.C:
			if d.ctl.Advance(d.clock.Due(now)) > 0 {
				d.Draw()
			}
		}
	}
}

// Handle applies a terminal event and reports whether to quit.
func (d *Driver) Handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
		if d.opts.Fit {
			return false, d.rebuild(d.ctl.ShowHUD())
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyRune:
			return d.ctl.Apply(ui.ActionForRune(ev.Rune())), nil
		}
	}
	return false, nil
}

// Draw renders the fire and the status line and shows the screen.
func (d *Driver) Draw() {
	f := d.ctl.Fire()
	f.Render(d.cells)
	d.screen.Clear()
	cols, rows := d.cells.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			d.screen.SetContent(x, y, ' ', nil, cellStyle(d.cells.At(x, y)))
		}
	}
	if d.ctl.ShowHUD() {
		_, height := d.screen.Size()
		if rows < height {
			drawText(d.screen, 0, rows, ui.StatusLine(f.Name(), f.Stats(), d.ctl.Paused()), statusStyle)
		}
	}
	d.screen.Show()
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)

func cellStyle(c fire.RGB) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

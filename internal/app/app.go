//go:build ebiten

package app

import (
	"errors"
	"math"

	"doomfire/internal/render"
	"doomfire/internal/sims/fire"
	"doomfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a fire to the ebiten.Game interface.
type Game struct {
	ctl     *ui.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	scale   float64
}

// New constructs a Game for the provided fire.
func New(f *fire.Fire, opts Options) *Game {
	w, h := f.SurfaceSize()
	return &Game{
		ctl:     ui.NewController(f, opts.Seed, opts.HUD, opts.OnStep),
		painter: render.NewGridPainter(w, h),
		hud:     ui.NewHUD(f, ui.PanelWidth),
		scale:   opts.scale(),
	}
}

// Run opens a window and drives the fire until the user quits.
func Run(f *fire.Fire, opts Options) error {
	g := New(f, opts)
	w, h := g.Layout(0, 0)
	title := opts.Title
	if title == "" {
		title = "doomfire"
	}
	ebiten.SetWindowTitle(title)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

var keyActions = map[ebiten.Key]ui.Action{
	ebiten.KeyQ:      ui.ActionQuit,
	ebiten.KeyEscape: ui.ActionQuit,
	ebiten.KeySpace:  ui.ActionPause,
	ebiten.KeyN:      ui.ActionStep,
	ebiten.KeyR:      ui.ActionReset,
	ebiten.KeyS:      ui.ActionReseed,
	ebiten.KeyH:      ui.ActionToggleHUD,
}

// Update handles per-frame logic and advances the fire one tick.
func (g *Game) Update() error {
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) && g.ctl.Apply(action) {
			return ebiten.Termination
		}
	}
	g.ctl.Advance(1)
	if g.ctl.ShowHUD() {
		g.hud.Update(g.ctl.Paused())
	}
	return nil
}

// Draw renders the current fire state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.Fire(), g.scale)
	if g.ctl.ShowHUD() {
		w, h := g.viewSize()
		g.hud.Draw(screen, w, h)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.viewSize()
	if g.ctl.ShowHUD() {
		w += g.hud.Width()
	}
	return w, h
}

func (g *Game) viewSize() (int, int) {
	w, h := g.painter.Size()
	return int(math.Ceil(float64(w) * g.scale)), int(math.Ceil(float64(h) * g.scale))
}

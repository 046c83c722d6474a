package fire

import (
	"doomfire/internal/core"
)

var (
	_ core.Sim               = (*Fire)(nil)
	_ core.ParameterProvider = (*Fire)(nil)
)

// Fire is a Doom-style fire: a heat grid that is shifted up, reseeded along
// the bottom row and blurred every tick.
type Fire struct {
	cfg Config

	cur *core.HeatGrid
	nxt *core.HeatGrid

	palette  Palette
	renderer *Renderer
	rng      RandomSource

	stats Stats
}

// New validates cfg and returns a fire seeded from cfg.Seed.
func New(cfg Config) (*Fire, error) {
	return NewWithSource(cfg, core.NewRNG(cfg.Seed))
}

// NewWithSource is New with a caller-provided random source.
func NewWithSource(cfg Config, rng RandomSource) (*Fire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := BuildPalette(cfg.PaletteLength)
	if err != nil {
		return nil, err
	}
	return &Fire{
		cfg:      cfg,
		cur:      core.NewHeatGrid(cfg.Width, cfg.Height),
		nxt:      core.NewHeatGrid(cfg.Width, cfg.Height),
		palette:  palette,
		renderer: NewRenderer(palette, cfg.TileWidth, cfg.TileHeight),
		rng:      rng,
	}, nil
}

// Name returns the simulation identifier.
func (f *Fire) Name() string { return "fire" }

// Size reports the grid dimensions.
func (f *Fire) Size() core.Size { return core.Size{W: f.cfg.Width, H: f.cfg.Height} }

// Cells exposes the current heat values in row-major order.
func (f *Fire) Cells() []uint8 { return f.cur.Cells() }

// Grid exposes the grid of record.
func (f *Fire) Grid() *core.HeatGrid { return f.cur }

// Palette returns the heat-to-color mapping.
func (f *Fire) Palette() Palette { return f.palette }

// Config returns the configuration the fire was built with.
func (f *Fire) Config() Config { return f.cfg }

// SurfaceSize returns the pixel dimensions a host surface needs.
func (f *Fire) SurfaceSize() (int, int) { return f.cfg.SurfaceSize() }

// Stats returns the measurements taken after the latest Step.
func (f *Fire) Stats() Stats { return f.stats }

// Reset clears the grid and restarts the random source. A zero seed falls
// back to the configured seed. Sources that cannot be reseeded keep their
// current sequence.
func (f *Fire) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	if s, ok := f.rng.(interface{ Seed(int64) }); ok {
		s.Seed(effective)
	}
	f.cur.Clear()
	f.nxt.Clear()
	f.stats = Stats{}
}

// Step advances one tick: shift, seed, vertical blur, horizontal blur.
func (f *Fire) Step() {
	shiftUp(f.cur)
	ignitions := seedFlames(f.cur, f.rng, f.cfg.Params)

	blurVertical(f.nxt, f.cur)
	f.cur, f.nxt = f.nxt, f.cur
	blurHorizontal(f.nxt, f.cur)
	f.cur, f.nxt = f.nxt, f.cur

	mean, peak, lit := measure(f.cur.Cells())
	f.stats = Stats{
		Tick:      f.stats.Tick + 1,
		Ignitions: ignitions,
		Mean:      mean,
		Max:       peak,
		Lit:       lit,
	}
}

// Render draws the current grid onto s.
func (f *Fire) Render(s Surface) {
	f.renderer.Render(f.cur, s)
}

func init() {
	core.Register("fire", func(kv map[string]string) (core.Sim, error) {
		cfg, err := FromMap(DefaultConfig(), kv)
		if err != nil {
			return nil, err
		}
		return New(cfg)
	})
}

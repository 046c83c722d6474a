package fire

import (
	"fmt"
	"sort"
	"strconv"
)

// MinGridSize is the smallest width or height the boundary diffusion rules
// support: each axis needs at least one interior cell.
const MinGridSize = 3

// Params holds the flame seeding tunables.
type Params struct {
	// IgnitionOdds is the denominator of the ignition chance: one column in
	// IgnitionOdds is reignited each tick on average.
	IgnitionOdds int `yaml:"ignition_odds"`
	// EmberFloor is the minimum heat kept alive in non-igniting source cells.
	EmberFloor int `yaml:"ember_floor"`
	// FlareMin and FlareMax bound the heat of a fresh ignition, [min, max).
	FlareMin int `yaml:"flare_min"`
	FlareMax int `yaml:"flare_max"`
}

// Config controls the fire simulation dimensions and tunables.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`

	PaletteLength int `yaml:"palette_length"`

	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         140,
		Height:        40,
		TileWidth:     10,
		TileHeight:    18,
		PaletteLength: DefaultPaletteLength,
		Seed:          1337,
		Params: Params{
			IgnitionOdds: 32,
			EmberFloor:   14,
			FlareMin:     128,
			FlareMax:     256,
		},
	}
}

// SurfaceSize returns the pixel dimensions of a surface holding the whole grid.
func (c Config) SurfaceSize() (int, int) {
	return c.Width * c.TileWidth, c.Height * c.TileHeight
}

// Validate rejects configurations that would break the diffusion boundary
// rules or let a cell index past the end of the palette.
func (c Config) Validate() error {
	if c.Width < MinGridSize {
		return invalid("width", c.Width, "must be at least %d", MinGridSize)
	}
	if c.Height < MinGridSize {
		return invalid("height", c.Height, "must be at least %d", MinGridSize)
	}
	if c.TileWidth < 1 {
		return invalid("tile_width", c.TileWidth, "must be positive")
	}
	if c.TileHeight < 1 {
		return invalid("tile_height", c.TileHeight, "must be positive")
	}
	if c.PaletteLength < RampLength {
		return invalid("palette_length", c.PaletteLength, "must hold the %d ramp colors", RampLength)
	}
	p := c.Params
	if p.IgnitionOdds < 1 {
		return invalid("ignition_odds", p.IgnitionOdds, "must be at least 1")
	}
	if p.EmberFloor < 0 || p.EmberFloor >= min(c.PaletteLength, maxHeat+1) {
		return invalid("ember_floor", p.EmberFloor, "must lie in [0, %d)", min(c.PaletteLength, maxHeat+1))
	}
	if p.FlareMin < 0 {
		return invalid("flare_min", p.FlareMin, "must not be negative")
	}
	if p.FlareMin >= p.FlareMax {
		return invalid("flare_max", p.FlareMax, "must exceed flare_min=%d", p.FlareMin)
	}
	if p.FlareMax > maxHeat+1 {
		return invalid("flare_max", p.FlareMax, "cells hold at most %d", maxHeat)
	}
	if p.FlareMax > c.PaletteLength {
		return invalid("palette_length", c.PaletteLength, "shorter than flare_max=%d", p.FlareMax)
	}
	return nil
}

var intKeys = map[string]func(*Config) *int{
	"w":              func(c *Config) *int { return &c.Width },
	"h":              func(c *Config) *int { return &c.Height },
	"width":          func(c *Config) *int { return &c.Width },
	"height":         func(c *Config) *int { return &c.Height },
	"tile_width":     func(c *Config) *int { return &c.TileWidth },
	"tile_height":    func(c *Config) *int { return &c.TileHeight },
	"palette_length": func(c *Config) *int { return &c.PaletteLength },
	"ignition_odds":  func(c *Config) *int { return &c.Params.IgnitionOdds },
	"ember_floor":    func(c *Config) *int { return &c.Params.EmberFloor },
	"flare_min":      func(c *Config) *int { return &c.Params.FlareMin },
	"flare_max":      func(c *Config) *int { return &c.Params.FlareMax },
}

// Keys lists the override keys understood by FromMap.
func Keys() []string {
	keys := make([]string, 0, len(intKeys)+1)
	for k := range intKeys {
		keys = append(keys, k)
	}
	keys = append(keys, "seed")
	sort.Strings(keys)
	return keys
}

// Map renders c as the key/value overrides FromMap understands, so that
// FromMap(DefaultConfig(), c.Map()) reproduces c.
func (c Config) Map() map[string]string {
	kv := make(map[string]string, 10)
	for _, k := range []string{"width", "height", "tile_width", "tile_height", "palette_length",
		"ignition_odds", "ember_floor", "flare_min", "flare_max"} {
		kv[k] = strconv.Itoa(*intKeys[k](&c))
	}
	kv["seed"] = strconv.FormatInt(c.Seed, 10)
	return kv
}

// FromMap applies flag-style key/value overrides on top of base. Unknown keys
// and unparsable values are reported rather than skipped. The result is not
// validated; call Validate or New.
func FromMap(base Config, kv map[string]string) (Config, error) {
	c := base
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := kv[k]
		if k == "seed" {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return base, fmt.Errorf("fire: seed %q: %w", v, err)
			}
			c.Seed = parsed
			continue
		}
		field, ok := intKeys[k]
		if !ok {
			return base, fmt.Errorf("fire: unknown parameter %q", k)
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return base, fmt.Errorf("fire: %s %q: %w", k, v, err)
		}
		*field(&c) = parsed
	}
	return c, nil
}

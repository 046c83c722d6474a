package config

import (
	"sort"

	"doomfire/internal/sims/fire"
)

var Presets = map[string]func() fire.Config{
	"classic": fire.DefaultConfig,
	"sketch": func() fire.Config {
		c := fire.DefaultConfig()
		c.Width, c.Height = 100, 35
		return c
	},
	"embers": func() fire.Config {
		c := fire.DefaultConfig()
		c.Params.IgnitionOdds = 96
		return c
	},
	"inferno": func() fire.Config {
		c := fire.DefaultConfig()
		c.Params.IgnitionOdds = 6
		c.Params.EmberFloor = 40
		return c
	},
	"tiny": func() fire.Config {
		c := fire.DefaultConfig()
		c.Width, c.Height = 3, 3
		c.TileWidth, c.TileHeight = 32, 32
		return c
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *fire.Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	c := build()
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

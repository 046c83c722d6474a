package fire

import (
	"strconv"

	"doomfire/internal/core"
)

// Parameters describes the construction-time configuration for HUDs and reports.
func (f *Fire) Parameters() core.ParameterSnapshot {
	c := f.cfg
	p := c.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("width", "Width", c.Width),
				intParam("height", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Tiles",
			Params: []core.Parameter{
				intParam("tile_width", "Tile width", c.TileWidth),
				intParam("tile_height", "Tile height", c.TileHeight),
				intParam("palette_length", "Palette length", c.PaletteLength),
			},
		},
		{
			Name:    "Seeding",
			Summary: "bottom row, edge columns untouched",
			Params: []core.Parameter{
				{
					Key:         "ignition_chance",
					Label:       "Ignition chance",
					Type:        core.ParamTypeFloat,
					Value:       strconv.FormatFloat(1/float64(p.IgnitionOdds), 'f', 4, 64),
					Description: "per column per tick",
				},
				intParam("ignition_odds", "Ignition odds (1 in)", p.IgnitionOdds),
				intParam("ember_floor", "Ember floor", p.EmberFloor),
				intParam("flare_min", "Flare min", p.FlareMin),
				intParam("flare_max", "Flare max (excl.)", p.FlareMax),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

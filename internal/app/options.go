package app

import (
	"errors"

	"doomfire/internal/sims/fire"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("app: the gui driver requires building with the 'ebiten' tag")

// Options configures the windowed driver.
type Options struct {
	Title string
	TPS   int
	Scale float64
	HUD   bool
	Seed  int64

	// OnStep, when set, observes the stats after every tick.
	OnStep func(fire.Stats)
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

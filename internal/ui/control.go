package ui

import (
	"time"

	"doomfire/internal/sims/fire"
)

// Action is a driver-independent user command.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionStep
	ActionReset
	ActionReseed
	ActionToggleHUD
)

// ActionForRune maps the shared key legend onto actions.
func ActionForRune(r rune) Action {
	switch r {
	case 'q', 'Q':
		return ActionQuit
	case ' ':
		return ActionPause
	case 'n', 'N':
		return ActionStep
	case 'r', 'R':
		return ActionReset
	case 's', 'S':
		return ActionReseed
	case 'h', 'H':
		return ActionToggleHUD
	}
	return ActionNone
}

// Controller holds the playback state every interactive driver shares.
type Controller struct {
	fire *fire.Fire

	paused   bool
	tickOnce bool
	showHUD  bool
	seed     int64

	onStep func(fire.Stats)
	clock  func() int64
}

// NewController wraps f. seed is the value R resets to; onStep may be nil.
func NewController(f *fire.Fire, seed int64, showHUD bool, onStep func(fire.Stats)) *Controller {
	return &Controller{
		fire:    f,
		seed:    seed,
		showHUD: showHUD,
		onStep:  onStep,
		clock:   func() int64 { return time.Now().UnixNano() },
	}
}

func (c *Controller) Fire() *fire.Fire { return c.fire }
func (c *Controller) Paused() bool     { return c.paused }
func (c *Controller) ShowHUD() bool    { return c.showHUD }
func (c *Controller) Seed() int64      { return c.seed }

// Apply performs a and reports whether the driver should quit.
func (c *Controller) Apply(a Action) (quit bool) {
	switch a {
	case ActionQuit:
		return true
	case ActionPause:
		c.paused = !c.paused
	case ActionStep:
		c.tickOnce = true
	case ActionReset:
		c.Reset(c.seed)
	case ActionReseed:
		c.Reset(c.clock())
	case ActionToggleHUD:
		c.showHUD = !c.showHUD
	}
	return false
}

// Reset restarts the fire from seed and remembers it for later resets.
func (c *Controller) Reset(seed int64) {
	c.seed = seed
	c.fire.Reset(seed)
	c.tickOnce = false
}

// Advance runs up to due ticks. A paused controller runs a single tick if
// one was requested. It returns the number of ticks taken.
func (c *Controller) Advance(due int) int {
	if c.paused {
		if !c.tickOnce {
			return 0
		}
		due = 1
	}
	c.tickOnce = false
	for i := 0; i < due; i++ {
		c.fire.Step()
		if c.onStep != nil {
			c.onStep(c.fire.Stats())
		}
	}
	return due
}

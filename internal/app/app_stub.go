//go:build !ebiten

package app

import "doomfire/internal/sims/fire"

// Run reports that the windowed driver is not compiled in.
func Run(*fire.Fire, Options) error {
	return ErrNoGUI
}

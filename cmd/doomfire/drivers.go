package main

import (
	"context"
	"fmt"

	"doomfire/internal/app"
	"doomfire/internal/config"
	"doomfire/internal/term"
	"doomfire/internal/tui"

	"github.com/spf13/cobra"
)

var fitTerminal bool

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "run in a window (requires the ebiten build tag)",
		RunE:  backendRunner("gui"),
	}
}

func newTermCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "run full-screen in the terminal, one cell per character",
		RunE:  backendRunner("term"),
	}
	cmd.Flags().BoolVar(&fitTerminal, "fit", false, "size the grid to the terminal")
	return cmd
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal with half-block cells and a stats panel",
		RunE:  backendRunner("tui"),
	}
}

func backendRunner(backend string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		s.Display.Backend = backend
		return runBackend(cmd.Context(), s, fitTerminal)
	}
}

func runBackend(ctx context.Context, s *config.Settings, fit bool) error {
	observe, stopSound := startSound(s)
	defer stopSound()

	d := s.Display
	if d.Backend == "term" {
		return term.Run(ctx, s.Fire, term.Options{
			TPS: d.TPS, Seed: s.Fire.Seed, HUD: d.HUD, Fit: fit, OnStep: observe, Build: newFire,
		})
	}

	f, err := newFire(s.Fire)
	if err != nil {
		return err
	}
	switch d.Backend {
	case "gui":
		return app.Run(f, app.Options{
			Title:  fmt.Sprintf("doomfire %dx%d", s.Fire.Width, s.Fire.Height),
			TPS:    d.TPS,
			Scale:  d.Scale,
			HUD:    d.HUD,
			Seed:   s.Fire.Seed,
			OnStep: observe,
		})
	case "tui":
		return tui.Run(f, tui.Options{TPS: d.TPS, Seed: s.Fire.Seed, HUD: d.HUD, OnStep: observe})
	}
	return fmt.Errorf("unknown backend %q", d.Backend)
}

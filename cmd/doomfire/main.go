package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"slices"
	"strings"

	"doomfire/internal/audio"
	"doomfire/internal/config"
	"doomfire/internal/core"
	"doomfire/internal/sims/fire"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	config string
	preset string
	seed   int64
	set    []string
	tps    int
	scale  float64
	sound  bool
	noHUD  bool
	sim    string
}

var flags globalFlags

func main() {
	log.SetPrefix("doomfire: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "doomfire",
		Short:         "Doom-style fire cellular automaton",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return runBackend(cmd.Context(), s, false)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "settings file (yaml)")
	pf.StringVarP(&flags.preset, "preset", "p", "", "named preset ("+strings.Join(config.ListPresets(), ", ")+")")
	pf.Int64Var(&flags.seed, "seed", 0, "random seed (0 keeps the configured seed)")
	pf.StringArrayVar(&flags.set, "set", nil, "override a fire value, key=value ("+strings.Join(fire.Keys(), ", ")+")")
	pf.IntVar(&flags.tps, "tps", config.DefaultTPS, "ticks per second")
	pf.Float64Var(&flags.scale, "scale", 1, "window scale (gui)")
	pf.BoolVar(&flags.sound, "sound", false, "play fire crackle")
	pf.BoolVar(&flags.noHUD, "no-hud", false, "start with the stats panel hidden")
	pf.StringVar(&flags.sim, "sim", "fire", "registered simulation to build")
	_ = pf.MarkHidden("sim")

	root.AddCommand(
		newGUICmd(),
		newTermCmd(),
		newTUICmd(),
		newRunCmd(),
		newRecordCmd(),
		newPresetsCmd(),
		newPaletteCmd(),
		newConfigCmd(),
	)
	return root
}

// resolveSettings layers defaults, preset, settings file, --set overrides
// and explicit flags, in that order.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	if !slices.Contains(core.Names(), flags.sim) {
		return nil, fmt.Errorf("unknown simulation %q (have %s)", flags.sim, strings.Join(core.Names(), ", "))
	}
	s := config.DefaultSettings()
	if flags.preset != "" {
		if err := s.ApplyPreset(flags.preset); err != nil {
			return nil, err
		}
	}
	if flags.config != "" {
		if err := config.LoadInto(flags.config, s); err != nil {
			return nil, err
		}
	}
	if len(flags.set) > 0 {
		kv, err := parseSet(flags.set)
		if err != nil {
			return nil, err
		}
		cfg, err := fire.FromMap(s.Fire, kv)
		if err != nil {
			return nil, err
		}
		s.Fire = cfg
	}

	fs := cmd.Flags()
	if fs.Changed("seed") {
		s.Fire.Seed = flags.seed
	}
	if fs.Changed("tps") {
		s.Display.TPS = flags.tps
	}
	if fs.Changed("scale") {
		s.Display.Scale = flags.scale
	}
	if fs.Changed("sound") {
		s.Display.Sound = flags.sound
	}
	if fs.Changed("no-hud") {
		s.Display.HUD = !flags.noHUD
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// newFire builds the selected simulation from the registry.
func newFire(cfg fire.Config) (*fire.Fire, error) {
	sim, err := core.New(flags.sim, cfg.Map())
	if err != nil {
		return nil, err
	}
	f, ok := sim.(*fire.Fire)
	if !ok {
		return nil, fmt.Errorf("simulation %q is not a fire", sim.Name())
	}
	return f, nil
}

func parseSet(pairs []string) (map[string]string, error) {
	kv := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("--set %q: want key=value", pair)
		}
		kv[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return kv, nil
}

// startSound returns a stats observer feeding the crackle stream, or nil
// when sound is off or no device is available.
func startSound(s *config.Settings) (observe func(fire.Stats), stop func()) {
	if !s.Display.Sound {
		return nil, func() {}
	}
	c := audio.NewCrackle(audio.SampleRate, uint64(s.Fire.Seed))
	stop, err := audio.Play(c)
	if err != nil {
		log.Printf("sound disabled: %v", err)
		return nil, func() {}
	}
	return c.Observe, stop
}

package config

import (
	"fmt"
	"os"

	"doomfire/internal/sims/fire"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTPS     = 60
	DefaultBackend = "term"
)

// Backends lists the frame drivers a settings file may select.
var Backends = []string{"gui", "term", "tui"}

// Settings is the on-disk configuration: the fire itself plus how to drive it.
type Settings struct {
	Preset  string      `yaml:"preset,omitempty"`
	Fire    fire.Config `yaml:"fire"`
	Display Display     `yaml:"display"`
}

// Display controls the frame driver.
type Display struct {
	Backend string  `yaml:"backend"`
	TPS     int     `yaml:"tps"`
	Scale   float64 `yaml:"scale"`
	Sound   bool    `yaml:"sound"`
	HUD     bool    `yaml:"hud"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Fire: fire.DefaultConfig(),
		Display: Display{
			Backend: DefaultBackend,
			TPS:     DefaultTPS,
			Scale:   1,
			HUD:     true,
		},
	}
}

// Load reads and validates a YAML settings file over the defaults.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()
	if err := LoadInto(path, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// LoadInto decodes a YAML settings file over s. Fields missing from the
// file keep their current values; a preset named in the file is applied
// before the file's own values. The result is not validated, so later
// layers may still fix it up; call Validate once they are applied.
func LoadInto(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if head.Preset != "" {
		if err := s.ApplyPreset(head.Preset); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyPreset overwrites the fire configuration with a named preset.
func (s *Settings) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	s.Preset = name
	s.Fire = *p
	return nil
}

// Validate checks the fire configuration and the display section.
func (s *Settings) Validate() error {
	if err := s.Fire.Validate(); err != nil {
		return err
	}
	known := false
	for _, b := range Backends {
		if s.Display.Backend == b {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("unknown backend %q (available: %v)", s.Display.Backend, Backends)
	}
	if s.Display.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", s.Display.TPS)
	}
	if s.Display.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", s.Display.Scale)
	}
	return nil
}

//go:build !ebiten

package app

import (
	"errors"
	"testing"

	"doomfire/internal/sims/fire"
)

func TestRunWithoutGUIBuild(t *testing.T) {
	f, err := fire.New(fire.DefaultConfig())
	if err != nil {
		t.Fatalf("new fire: %v", err)
	}
	if err := Run(f, Options{}); !errors.Is(err, ErrNoGUI) {
		t.Fatalf("expected ErrNoGUI, got %v", err)
	}
}

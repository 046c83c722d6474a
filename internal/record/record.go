// Package record captures fire frames to animated files and plots heat
// history.
package record

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"doomfire/internal/render"
	"doomfire/internal/sims/fire"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("record: unsupported output format")

// Encoder consumes rendered frames.
type Encoder interface {
	AddFrame(img *image.RGBA) error
	Close() error
}

// Options controls a capture.
type Options struct {
	Frames int
	// Skip ticks are run before the first frame so the fire can climb.
	Skip int
	// Delay between GIF frames in hundredths of a second.
	Delay int
	// FPS of AVI output.
	FPS     int
	Quality int
}

// DefaultOptions records 100 frames at roughly 30 frames per second.
func DefaultOptions() Options {
	return Options{Frames: 100, Skip: 60, Delay: 3, FPS: 30, Quality: 90}
}

// Create opens an encoder chosen by the extension of path.
func Create(path string, f *fire.Fire, opts Options) (Encoder, error) {
	w, h := f.SurfaceSize()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return NewGIF(path, f.Palette().ColorPalette(), opts.Delay), nil
	case ".avi":
		return NewMJPEG(path, w, h, opts.FPS, opts.Quality)
	}
	return nil, fmt.Errorf("%w: %q (use .gif or .avi)", ErrUnsupportedFormat, filepath.Ext(path))
}

// Capture warms the fire up, then steps and renders opts.Frames frames into
// enc. The returned history covers every tick taken.
func Capture(f *fire.Fire, enc Encoder, opts Options) (*History, error) {
	hist := NewHistory()
	for i := 0; i < opts.Skip; i++ {
		f.Step()
		hist.Add(f.Stats())
	}
	w, h := f.SurfaceSize()
	surface := render.NewImageSurface(w, h)
	for i := 0; i < opts.Frames; i++ {
		f.Step()
		hist.Add(f.Stats())
		f.Render(surface)
		if err := enc.AddFrame(surface.Image()); err != nil {
			return hist, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return hist, nil
}

//go:build ebiten

package ui

import (
	"image/color"

	"doomfire/internal/sims/fire"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the fire.
type HUD struct {
	fire       *fire.Fire
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
	paused     bool
}

// NewHUD constructs a HUD for the provided fire and panel width.
func NewHUD(f *fire.Fire, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{fire: f, width: width}
}

// Width is the horizontal space the panel occupies.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached panel rows from the fire.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	h.lines = Lines(h.fire, h.fire.Stats())
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, StatusLine("Fire", h.fire.Stats(), h.paused), face, panelPadding, y, headerColor)
	y += lineHeight
	for _, line := range h.lines {
		y += lineHeight
		if y > height-footerHeight {
			break
		}
		c := valueColor
		if len(line) > 0 && line[0] != ' ' {
			c = headerColor
		}
		text.Draw(h.panel, line, face, panelPadding, y, c)
	}
	text.Draw(h.panel, KeyHelp, face, panelPadding, height-panelPadding, hintColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hintColor   = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

const (
	// PanelWidth fits the key legend in the 7px basic font.
	PanelWidth     = 400
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	footerHeight   = 32
)

// Package hud draws the scene's diagnostic labels as text panels over the
// game view.
package hud

import (
	"image"
	"image/color"

	"chosenoffset.com/camerascene/internal/render"
	"chosenoffset.com/camerascene/internal/scene"
)

// HUDConfig defines how labels are laid out and drawn
type HUDConfig struct {
	Position  string     `json:"position"`   // "label" (use each label's own position), "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity   float64    `json:"opacity"`    // Background opacity (0-1)
	Padding   int        `json:"padding"`    // Space between panel edge and text
	Margin    int        `json:"margin"`     // Space between panels and the screen edge
	TextScale float64    `json:"text_scale"` // Text scale multiplier
	TextColor color.RGBA `json:"-"`
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		Position:  "label",
		Opacity:   0.6,
		Padding:   6,
		Margin:    10,
		TextScale: 1.0,
		TextColor: color.RGBA{235, 235, 235, 255},
	}
}

// HUD manages the label panels
type HUD struct {
	config       *HUDConfig
	renderer     render.Renderer
	screenWidth  int
	screenHeight int
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, renderer render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     renderer,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// PanelRects returns the background rectangle of each label, in order.
// Labels with no text get an empty rectangle.
func (h *HUD) PanelRects(labels []*scene.Label) []image.Rectangle {
	rects := make([]image.Rectangle, len(labels))
	offset := 0
	for i, l := range labels {
		if l.Text == "" {
			continue
		}
		w, ht := h.renderer.MeasureText(l.Text, h.config.TextScale)
		w += 2 * h.config.Padding
		ht += 2 * h.config.Padding

		x, y := h.calculatePosition(l, w, ht, offset)
		rects[i] = image.Rect(x, y, x+w, y+ht)
		offset += ht + h.config.Margin
	}
	return rects
}

// Draw renders every non-empty label
func (h *HUD) Draw(screen render.Image, labels []*scene.Label) {
	for i, r := range h.PanelRects(labels) {
		if r.Empty() {
			continue
		}
		h.drawPanel(screen, r)
		h.drawText(screen, labels[i].Text, r.Min.X+h.config.Padding, r.Min.Y+h.config.Padding)
	}
}

// calculatePosition returns the top-left corner of a panel. Corner anchors
// stack panels away from the corner by offset.
func (h *HUD) calculatePosition(l *scene.Label, w, ht, offset int) (int, int) {
	m := h.config.Margin

	switch h.config.Position {
	case "top-left":
		return m, m + offset
	case "top-right":
		return h.screenWidth - w - m, m + offset
	case "bottom-left":
		return m, h.screenHeight - ht - m - offset
	case "bottom-right":
		return h.screenWidth - w - m, h.screenHeight - ht - m - offset
	default: // "label"
		return int(l.Position.X()), int(l.Position.Y())
	}
}

// drawPanel draws the semi-transparent background panel
func (h *HUD) drawPanel(screen render.Image, r image.Rectangle) {
	alpha := uint8(255 * h.config.Opacity)
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, ht := float32(r.Dx()), float32(r.Dy())

	h.renderer.FillRect(screen, x, y, w, ht, color.RGBA{15, 15, 25, alpha})
	h.renderer.StrokeRect(screen, x, y, w, ht, 1, color.RGBA{80, 80, 100, alpha})
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(screen render.Image, text string, x, y int) {
	h.renderer.DrawText(screen, text, x+1, y+1, color.RGBA{0, 0, 0, 200}, h.config.TextScale)
	h.renderer.DrawText(screen, text, x, y, h.config.TextColor, h.config.TextScale)
}

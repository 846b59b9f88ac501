// Package config loads the scene configuration. Each file is layered over
// DefaultConfig so a partial document only overrides what it names.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/camerascene/internal/scene"
	"chosenoffset.com/camerascene/internal/ui/hud"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything needed to start the demo
type Config struct {
	Window  WindowConfig  `json:"window"`
	Camera  CameraConfig  `json:"camera"`
	Player  PlayerConfig  `json:"player"`
	Overlay OverlayConfig `json:"overlay"`
}

// Vec2 is a JSON-friendly 2D vector
type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Vec returns v as a math vector.
func (v Vec2) Vec() mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
}

// CameraConfig defines the camera placement and zoom
type CameraConfig struct {
	Scale    float32 `json:"scale"`    // World units per logical pixel (smaller = zoomed in)
	Position Vec2    `json:"position"` // Camera center in world coordinates
}

// PlayerConfig defines the player sprite
type PlayerConfig struct {
	Position Vec2    `json:"position"` // Spawn position in world coordinates
	Scale    Vec2    `json:"scale"`    // Sprite size in world units
	Step     float32 `json:"step"`     // Distance moved per held key per tick
}

// OverlayConfig defines the diagnostic labels
type OverlayConfig struct {
	Variant      string  `json:"variant"`       // "combined", "split" or "resize"
	Trigger      string  `json:"trigger"`       // "every_tick" or "pointer_motion"
	LabelOrigin  Vec2    `json:"label_origin"`  // Position of the first label
	LabelSpacing Vec2    `json:"label_spacing"` // Offset between consecutive labels
	FontSize     float64 `json:"font_size"`     // Label font size in pixels

	HUD hud.HUDConfig `json:"hud"` // Panel placement and styling
}

// DefaultConfig returns the standard demo setup
func DefaultConfig() *Config {
	opts := scene.DefaultOptions()
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "camerascene - arrow keys to move",
			Resizable: true,
		},
		Camera: CameraConfig{
			Scale: opts.CameraScale,
		},
		Player: PlayerConfig{
			Position: Vec2{opts.PlayerPosition.X(), opts.PlayerPosition.Y()},
			Scale:    Vec2{opts.PlayerScale.X(), opts.PlayerScale.Y()},
			Step:     opts.Step,
		},
		Overlay: OverlayConfig{
			Variant:      opts.Variant.String(),
			Trigger:      opts.Trigger.String(),
			LabelOrigin:  Vec2{opts.LabelOrigin.X(), opts.LabelOrigin.Y()},
			LabelSpacing: Vec2{opts.LabelSpacing.X(), opts.LabelSpacing.Y()},
			FontSize:     14,
			HUD:          *hud.DefaultConfig(),
		},
	}
}

// Load reads a config file over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Overlay.FontSize <= 0 {
		return fmt.Errorf("%w: font size %v", ErrInvalidConfig, c.Overlay.FontSize)
	}

	h := c.Overlay.HUD
	switch h.Position {
	case "label", "top-left", "top-right", "bottom-left", "bottom-right":
	default:
		return fmt.Errorf("%w: hud position %q", ErrInvalidConfig, h.Position)
	}
	if h.Opacity < 0 || h.Opacity > 1 {
		return fmt.Errorf("%w: opacity %v outside [0, 1]", ErrInvalidConfig, h.Opacity)
	}
	if h.Padding < 0 || h.Margin < 0 {
		return fmt.Errorf("%w: hud padding %d and margin %d must not be negative", ErrInvalidConfig, h.Padding, h.Margin)
	}
	if !(h.TextScale > 0) {
		return fmt.Errorf("%w: text scale %v", ErrInvalidConfig, h.TextScale)
	}

	opts, err := c.SceneOptions()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SceneOptions converts the config into scene options.
func (c *Config) SceneOptions() (scene.Options, error) {
	variant, err := scene.ParseVariant(c.Overlay.Variant)
	if err != nil {
		return scene.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	trigger, err := scene.ParseTrigger(c.Overlay.Trigger)
	if err != nil {
		return scene.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return scene.Options{
		CameraScale:    c.Camera.Scale,
		CameraPosition: c.Camera.Position.Vec(),
		PlayerPosition: c.Player.Position.Vec(),
		PlayerScale:    c.Player.Scale.Vec(),
		Step:           c.Player.Step,
		Variant:        variant,
		Trigger:        trigger,
		LabelOrigin:    c.Overlay.LabelOrigin.Vec(),
		LabelSpacing:   c.Overlay.LabelSpacing.Vec(),
	}, nil
}

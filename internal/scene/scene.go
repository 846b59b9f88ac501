// Package scene runs the per-frame simulation of the camera demo: a single
// player moved by the directional keys, a single orthographic camera, and up
// to three diagnostic labels describing cursor, viewport and visibility
// state. The player, camera and labels are held as direct handles; a tick is
// an explicit ordered pipeline of stages (see Stages).
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/camerascene/internal/camera"
)

// DefaultStep is the distance the player moves per held key per tick.
const DefaultStep float32 = 10

var (
	ErrInvalidScale       = errors.New("camera scale must be positive")
	ErrInvalidPlayerScale = errors.New("player scale must be positive on both axes")
	ErrUnknownVariant     = errors.New("unknown label variant")
	ErrUnknownTrigger     = errors.New("unknown report trigger")
)

// Player is the user-controlled sprite. Scale is the sprite size in world
// units and is never changed after construction.
type Player struct {
	Position mgl32.Vec2
	Scale    mgl32.Vec2
}

// Options configures a Scene.
type Options struct {
	CameraScale    float32
	CameraPosition mgl32.Vec2

	PlayerPosition mgl32.Vec2
	PlayerScale    mgl32.Vec2
	Step           float32

	Variant Variant
	Trigger Trigger

	LabelOrigin  mgl32.Vec2
	LabelSpacing mgl32.Vec2
}

// DefaultOptions returns the demo's standard setup: unit zoom, the player at
// (320, 240) with a 64x32 sprite, and a single combined label.
func DefaultOptions() Options {
	return Options{
		CameraScale:    1,
		PlayerPosition: mgl32.Vec2{320, 240},
		PlayerScale:    mgl32.Vec2{64, 32},
		Step:           DefaultStep,
		Variant:        VariantCombined,
		Trigger:        TriggerEveryTick,
		LabelOrigin:    mgl32.Vec2{10, 10},
		LabelSpacing:   mgl32.Vec2{0, 120},
	}
}

// Validate checks the options New relies on.
func (o Options) Validate() error {
	if !(o.CameraScale > 0) || math.IsInf(float64(o.CameraScale), 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, o.CameraScale)
	}
	if !(o.PlayerScale.X() > 0) || !(o.PlayerScale.Y() > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPlayerScale, o.PlayerScale)
	}
	if o.Variant < VariantCombined || o.Variant > VariantResize {
		return fmt.Errorf("%w: %d", ErrUnknownVariant, int(o.Variant))
	}
	if o.Trigger < TriggerEveryTick || o.Trigger > TriggerPointerMotion {
		return fmt.Errorf("%w: %d", ErrUnknownTrigger, int(o.Trigger))
	}
	return nil
}

// Scene owns the player, the camera and the labels. It is not safe for
// concurrent use.
type Scene struct {
	opts   Options
	player Player
	camera *camera.Camera
	labels []*Label
	// byRole maps each role to the label it is routed to.
	byRole [roleCount]*Label

	// lines holds the latest report per role; produced marks the roles
	// reported during the current tick.
	lines    [roleCount][]string
	produced [roleCount]bool

	scaleFactor float32
	stages      []Stage
}

// New builds a scene from opts.
func New(opts Options) (*Scene, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene options: %w", err)
	}

	s := &Scene{
		opts: opts,
		player: Player{
			Position: opts.PlayerPosition,
			Scale:    opts.PlayerScale,
		},
		camera:      camera.New(opts.CameraScale, opts.CameraPosition),
		labels:      newLabels(opts.Variant, opts.LabelOrigin, opts.LabelSpacing),
		scaleFactor: 1,
	}
	for _, l := range s.labels {
		for _, r := range l.Roles {
			s.byRole[r] = l
		}
	}
	s.stages = pipeline()
	return s, nil
}

// Options returns the options the scene was built with.
func (s *Scene) Options() Options {
	return s.opts
}

// Player returns the current player state.
func (s *Scene) Player() Player {
	return s.player
}

// Camera returns the scene camera.
func (s *Scene) Camera() *camera.Camera {
	return s.camera
}

// Labels returns every label in display order.
func (s *Scene) Labels() []*Label {
	return s.labels
}

// Label returns the label that role is routed to.
func (s *Scene) Label(role Role) (*Label, bool) {
	if role < 0 || role >= roleCount {
		return nil, false
	}
	l := s.byRole[role]
	return l, l != nil
}

// IsPlayerVisible reports whether the player is inside the camera view.
func (s *Scene) IsPlayerVisible() bool {
	return s.camera.IsVisible(s.player.Position)
}

// IsPositionVisible reports whether a world position is inside the camera
// view.
func (s *Scene) IsPositionVisible(position mgl32.Vec2) bool {
	return s.camera.IsVisible(position)
}

// Tick advances the scene by one frame, running every stage in order.
func (s *Scene) Tick(f Frame) {
	s.produced = [roleCount]bool{}
	for _, st := range s.stages {
		st.run(s, &f)
	}
}

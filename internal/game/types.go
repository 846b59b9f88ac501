package game

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Colors used by Draw.
var (
	backgroundColor = color.RGBA{30, 30, 40, 255}
	playerColor     = color.RGBA{255, 255, 255, 255}
	playerEdgeColor = color.RGBA{200, 200, 50, 255}
	axisColor       = color.RGBA{70, 70, 90, 255}
)

// cursorSample is the last cursor reading, used to detect pointer motion.
type cursorSample struct {
	pos    mgl32.Vec2
	inside bool
	valid  bool
}

package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/camerascene/internal/geom"
)

// Keys is the held (not just-pressed) state of the four directional keys.
type Keys struct {
	Up, Down, Left, Right bool
}

// Window is the host window geometry for one tick.
type Window struct {
	// Width and Height are the logical window size.
	Width, Height float32
	// ScaleFactor converts logical units to device pixels.
	ScaleFactor float32
}

// ResizeEvent reports a new logical window size.
type ResizeEvent struct {
	Width, Height float32
}

// Frame is everything the host delivers to the scene for one tick. The
// scene only reads it.
type Frame struct {
	Keys Keys
	// Cursor is the pointer position in window coordinates, absent when
	// the pointer is outside the window.
	Cursor geom.Option[mgl32.Vec2]
	// PointerMoved is set when the pointer moved since the previous tick.
	PointerMoved bool
	// Window is absent until the host has laid the window out.
	Window geom.Option[Window]
	// Resizes holds the resize events received since the previous tick, in
	// arrival order.
	Resizes []ResizeEvent
}

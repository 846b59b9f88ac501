// Package camera implements a 2D orthographic camera: the projection that
// turns a viewport size and zoom factor into a world-space view area, the
// logical and physical viewport rectangles, and the mappings between screen
// and world coordinates.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/camerascene/internal/geom"
)

const (
	// DefaultNear and DefaultFar bound the orthographic depth range.
	DefaultNear float32 = -1000
	DefaultFar  float32 = 1000
)

// Projection is an orthographic projection. Scale is the zoom factor in
// world units per logical pixel: smaller values zoom in.
type Projection struct {
	Scale float32
	// ViewportOrigin is the point of the viewport, in [0,1] fractions of its
	// size, that the camera position maps to. (0.5, 0.5) centers it.
	ViewportOrigin mgl32.Vec2
	Near, Far      float32
	// Area is the camera-local rectangle currently covered by the viewport.
	Area geom.Rect
}

// NewProjection returns a centered projection with the given scale. Until
// Update is called the area is the unit square (-1, -1)-(1, 1).
func NewProjection(scale float32) Projection {
	return Projection{
		Scale:          scale,
		ViewportOrigin: mgl32.Vec2{0.5, 0.5},
		Near:           DefaultNear,
		Far:            DefaultFar,
		Area:           geom.NewRect(-1, -1, 1, 1),
	}
}

// Update recomputes Area for a viewport of the given logical size.
func (p *Projection) Update(width, height float32) {
	originX := width * p.ViewportOrigin.X()
	originY := height * p.ViewportOrigin.Y()
	p.Area = geom.Rect{
		Min: mgl32.Vec2{-originX * p.Scale, -originY * p.Scale},
		Max: mgl32.Vec2{(width - originX) * p.Scale, (height - originY) * p.Scale},
	}
}

// Matrix returns the clip-from-view matrix.
func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Ortho(p.Area.Min.X(), p.Area.Max.X(), p.Area.Min.Y(), p.Area.Max.Y(), p.Near, p.Far)
}

package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/camerascene/internal/geom"
)

// Viewport is the region of the window the camera renders into.
type Viewport struct {
	// Logical is the viewport rectangle in window (UI) units.
	Logical geom.Rect
	// Physical is the same rectangle in device pixels.
	Physical geom.URect
}

// Camera is a 2D orthographic camera placed at Position in world space.
// World space is y-up; viewport space is y-down with (0, 0) at the top-left.
type Camera struct {
	Position   mgl32.Vec2
	Projection Projection

	viewport geom.Option[Viewport]
}

// New creates a camera at position with the given zoom scale. The viewport
// is unknown until SetViewport is called.
func New(scale float32, position mgl32.Vec2) *Camera {
	return &Camera{
		Position:   position,
		Projection: NewProjection(scale),
	}
}

// SetViewport lays the camera out over a window of the given logical size.
// scaleFactor converts logical units to device pixels. A non-positive size
// clears the viewport and leaves the projection area untouched.
func (c *Camera) SetViewport(width, height, scaleFactor float32) {
	if width <= 0 || height <= 0 {
		c.viewport = geom.None[Viewport]()
		return
	}
	if scaleFactor <= 0 {
		scaleFactor = 1
	}
	c.viewport = geom.Some(Viewport{
		Logical: geom.NewRect(0, 0, width, height),
		Physical: geom.NewURect(0, 0,
			uint32(math.Round(float64(width*scaleFactor))),
			uint32(math.Round(float64(height*scaleFactor)))),
	})
	c.Projection.Update(width, height)
}

// Viewport returns the current viewport, if laid out.
func (c *Camera) Viewport() geom.Option[Viewport] {
	return c.viewport
}

// LogicalViewportRect returns the viewport in logical units, if laid out.
func (c *Camera) LogicalViewportRect() geom.Option[geom.Rect] {
	vp, ok := c.viewport.Get()
	if !ok {
		return geom.None[geom.Rect]()
	}
	return geom.Some(vp.Logical)
}

// PhysicalViewportRect returns the viewport in device pixels, if laid out.
func (c *Camera) PhysicalViewportRect() geom.Option[geom.URect] {
	vp, ok := c.viewport.Get()
	if !ok {
		return geom.None[geom.URect]()
	}
	return geom.Some(vp.Physical)
}

// ViewArea returns the world-space rectangle visible through the camera.
func (c *Camera) ViewArea() geom.Rect {
	return c.Projection.Area.Translate(c.Position)
}

// IsVisible reports whether the world position lies inside the view area.
func (c *Camera) IsVisible(position mgl32.Vec2) bool {
	return IsPositionVisible(position, c.ViewArea())
}

// WorldFromView returns the camera placement transform.
func (c *Camera) WorldFromView() mgl32.Mat4 {
	return mgl32.Translate3D(c.Position.X(), c.Position.Y(), 0)
}

// ClipFromWorld returns the combined projection and inverse placement.
func (c *Camera) ClipFromWorld() mgl32.Mat4 {
	return c.Projection.Matrix().Mul4(c.WorldFromView().Inv())
}

// ViewportToWorld maps a viewport position (e.g. the cursor) to world space.
// It reports false when the viewport has not been laid out.
func (c *Camera) ViewportToWorld(p mgl32.Vec2) (mgl32.Vec2, bool) {
	vp, ok := c.viewport.Get()
	if !ok {
		return mgl32.Vec2{}, false
	}
	size := vp.Logical.Size()
	local := p.Sub(vp.Logical.Min)
	ndc := mgl32.Vec4{
		local.X()/size.X()*2 - 1,
		1 - local.Y()/size.Y()*2,
		0,
		1,
	}
	world := c.WorldFromView().Mul4(c.Projection.Matrix().Inv()).Mul4x1(ndc)
	return world.Vec2(), true
}

// WorldToViewport maps a world position to viewport coordinates. It reports
// false when the viewport has not been laid out.
func (c *Camera) WorldToViewport(p mgl32.Vec2) (mgl32.Vec2, bool) {
	vp, ok := c.viewport.Get()
	if !ok {
		return mgl32.Vec2{}, false
	}
	clip := c.ClipFromWorld().Mul4x1(p.Vec4(0, 1))
	size := vp.Logical.Size()
	return mgl32.Vec2{
		vp.Logical.Min.X() + (clip.X()+1)/2*size.X(),
		vp.Logical.Min.Y() + (1-clip.Y())/2*size.Y(),
	}, true
}

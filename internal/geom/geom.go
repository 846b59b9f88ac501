// Package geom holds the small set of 2D primitives shared by the camera and
// the scene: axis-aligned rectangles in world/logical units, unsigned pixel
// rectangles, and an explicit optional value for geometry that may not be
// known yet.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle in floating point units.
type Rect struct {
	Min, Max mgl32.Vec2
}

// NewRect builds a rectangle from two corners in any order.
func NewRect(x0, y0, x1, y1 float32) Rect {
	return Rect{
		Min: mgl32.Vec2{min(x0, x1), min(y0, y1)},
		Max: mgl32.Vec2{max(x0, x1), max(y0, y1)},
	}
}

// RectFromCenterSize builds a rectangle of the given full size around center.
func RectFromCenterSize(center, size mgl32.Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Max.X() - r.Min.X() }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Max.Y() - r.Min.Y() }

// Size returns (Width, Height).
func (r Rect) Size() mgl32.Vec2 { return r.Max.Sub(r.Min) }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() mgl32.Vec2 { return r.Min.Add(r.Max).Mul(0.5) }

// Contains reports whether p lies inside r. Both edges are inclusive.
func (r Rect) Contains(p mgl32.Vec2) bool {
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() &&
		p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

// Translate returns r moved by offset.
func (r Rect) Translate(offset mgl32.Vec2) Rect {
	return Rect{Min: r.Min.Add(offset), Max: r.Max.Add(offset)}
}

// UVec2 is an unsigned 2D point, used for device pixel coordinates.
type UVec2 struct {
	X, Y uint32
}

// URect is an axis-aligned rectangle in device pixels.
type URect struct {
	Min, Max UVec2
}

// NewURect builds a pixel rectangle from its corners.
func NewURect(x0, y0, x1, y1 uint32) URect {
	return URect{Min: UVec2{x0, y0}, Max: UVec2{x1, y1}}
}

// Width returns the horizontal extent in pixels.
func (r URect) Width() uint32 { return r.Max.X - r.Min.X }

// Height returns the vertical extent in pixels.
func (r URect) Height() uint32 { return r.Max.Y - r.Min.Y }

package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/camerascene/internal/geom"
)

// IsPositionVisible reports whether position lies within area, edges
// included.
func IsPositionVisible(position mgl32.Vec2, area geom.Rect) bool {
	return area.Contains(position)
}

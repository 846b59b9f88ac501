package geom

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// formatFloat renders v with the shortest representation that round-trips
// as a float32, e.g. "0", "-400", "0.5".
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// FormatCoords renders p as "x, y" with no brackets.
func FormatCoords(p mgl32.Vec2) string {
	return formatFloat(p.X()) + ", " + formatFloat(p.Y())
}

// FormatPoint renders p as "(x, y)".
func FormatPoint(p mgl32.Vec2) string {
	return "(" + FormatCoords(p) + ")"
}

// FormatUPoint renders p as "(x, y)".
func FormatUPoint(p UVec2) string {
	return "(" + strconv.FormatUint(uint64(p.X), 10) + ", " + strconv.FormatUint(uint64(p.Y), 10) + ")"
}

// FormatRect renders r as "(minx, miny)-(maxx, maxy)".
func FormatRect(r Rect) string {
	return FormatPoint(r.Min) + "-" + FormatPoint(r.Max)
}

// FormatURect renders r as "(minx, miny)-(maxx, maxy)".
func FormatURect(r URect) string {
	return FormatUPoint(r.Min) + "-" + FormatUPoint(r.Max)
}

// FormatSize renders a window size with one decimal, e.g. "800.0 x 600.0".
func FormatSize(width, height float32) string {
	return fmt.Sprintf("%.1f x %.1f", width, height)
}

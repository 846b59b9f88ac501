package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/camerascene/internal/geom"
)

func TestIsPositionVisible(t *testing.T) {
	area := geom.NewRect(-400, -300, 400, 300)

	tests := []struct {
		name string
		p    mgl32.Vec2
		want bool
	}{
		{"origin", mgl32.Vec2{0, 0}, true},
		{"on max edge", mgl32.Vec2{400, 300}, true},
		{"on min edge", mgl32.Vec2{-400, -300}, true},
		{"right of area", mgl32.Vec2{401, 0}, false},
		{"above area", mgl32.Vec2{0, 301}, false},
		{"far away", mgl32.Vec2{10000, 100000}, false},
		{"player default spawn", mgl32.Vec2{320, 240}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPositionVisible(tt.p, area); got != tt.want {
				t.Errorf("IsPositionVisible(%s) = %v, expected %v", geom.FormatPoint(tt.p), got, tt.want)
			}
		})
	}
}

func TestIsVisibleFollowsCameraPosition(t *testing.T) {
	cam := New(1, mgl32.Vec2{1000, 0})
	cam.SetViewport(800, 600, 1)

	if cam.IsVisible(mgl32.Vec2{0, 0}) {
		t.Error("Expected the origin to be outside a camera placed at (1000, 0)")
	}
	if !cam.IsVisible(mgl32.Vec2{1200, 100}) {
		t.Error("Expected (1200, 100) to be inside a camera placed at (1000, 0)")
	}
}

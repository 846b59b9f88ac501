package scene

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/camerascene/internal/geom"
)

// Fallback lines for geometry the host has not provided.
const (
	CursorOutsideLine          = "cursor_pos: outside window"
	CursorWorldOutsideLine     = "cursor_world_pos: outside window"
	CursorWorldUnavailableLine = "cursor_world_pos: unavailable"
	NoLogicalViewportLine      = "No logical_viewport_rect"
	NoPhysicalViewportLine     = "No physical_viewport_rect"

	resizeEventPrefix = "event: "
)

// triggered reports whether the pointer-driven roles should be reported
// this tick.
func (s *Scene) triggered(f *Frame) bool {
	return s.opts.Trigger == TriggerEveryTick || f.PointerMoved
}

func (s *Scene) reportCursor(f *Frame) {
	if !s.triggered(f) {
		return
	}
	s.emit(RoleCursor, s.cursorLines(f.Cursor))
}

func (s *Scene) reportSize(f *Frame) {
	if s.opts.Variant == VariantResize {
		if len(f.Resizes) == 0 {
			return
		}
		label, _ := s.Label(RoleSize)
		var event string
		for _, ev := range f.Resizes {
			event = resizeEventPrefix + geom.FormatSize(ev.Width, ev.Height)
			if label != nil {
				label.Position = mgl32.Vec2{ev.Width / 4, ev.Height / 4}
			}
		}
		s.emit(RoleSize, append([]string{event}, s.sizeLines()...))
		return
	}
	if !s.triggered(f) {
		return
	}
	s.emit(RoleSize, s.sizeLines())
}

func (s *Scene) reportVisibility(f *Frame) {
	if !s.triggered(f) {
		return
	}
	s.emit(RoleVisibility, []string{
		"is_player_visible: " + strconv.FormatBool(s.IsPlayerVisible()),
	})
}

// cursorLines reports the cursor in screen and world space, followed by the
// player position.
func (s *Scene) cursorLines(cursor geom.Option[mgl32.Vec2]) []string {
	lines := make([]string, 0, 3)
	if p, ok := cursor.Get(); ok {
		lines = append(lines, "cursor_pos: "+geom.FormatPoint(p))
		if world, ok := s.camera.ViewportToWorld(p); ok {
			lines = append(lines, "cursor_world_pos: "+geom.FormatPoint(world))
		} else {
			lines = append(lines, CursorWorldUnavailableLine)
		}
	} else {
		lines = append(lines, CursorOutsideLine, CursorWorldOutsideLine)
	}
	return append(lines, "player_pos: "+geom.FormatCoords(s.player.Position))
}

// sizeLines reports the viewport rectangles and the camera's world-space
// view area.
func (s *Scene) sizeLines() []string {
	lines := make([]string, 0, 3)
	if r, ok := s.camera.LogicalViewportRect().Get(); ok {
		lines = append(lines, "logical_viewport_rect: "+geom.FormatRect(r))
	} else {
		lines = append(lines, NoLogicalViewportLine)
	}
	if r, ok := s.camera.PhysicalViewportRect().Get(); ok {
		lines = append(lines, "physical_viewport_rect: "+geom.FormatURect(r))
	} else {
		lines = append(lines, NoPhysicalViewportLine)
	}
	return append(lines, "projection_area: "+geom.FormatRect(s.camera.ViewArea()))
}

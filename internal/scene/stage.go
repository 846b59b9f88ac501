package scene

import "strings"

// Stage is one named step of a tick. Reads and Writes name the state the
// stage touches; later stages may read what earlier ones wrote in the same
// tick, never the reverse.
type Stage struct {
	Name   string
	Reads  []string
	Writes []string

	run func(*Scene, *Frame)
}

// Stages returns the tick pipeline in execution order.
func (s *Scene) Stages() []Stage {
	out := make([]Stage, len(s.stages))
	copy(out, s.stages)
	return out
}

func pipeline() []Stage {
	return []Stage{
		{
			Name:   "layout",
			Reads:  []string{"frame.window", "frame.resizes"},
			Writes: []string{"camera.viewport"},
			run:    (*Scene).layout,
		},
		{
			Name:   "input",
			Reads:  []string{"frame.keys"},
			Writes: []string{"player.position"},
			run:    (*Scene).applyInput,
		},
		{
			Name:   "report_cursor",
			Reads:  []string{"frame.cursor", "frame.pointer_moved", "camera", "player.position"},
			Writes: []string{"report.cursor"},
			run:    (*Scene).reportCursor,
		},
		{
			Name:   "report_size",
			Reads:  []string{"frame.resizes", "frame.pointer_moved", "camera"},
			Writes: []string{"report.size", "label.size.position"},
			run:    (*Scene).reportSize,
		},
		{
			Name:   "report_visibility",
			Reads:  []string{"frame.pointer_moved", "camera", "player.position"},
			Writes: []string{"report.visibility"},
			run:    (*Scene).reportVisibility,
		},
		{
			Name:   "publish",
			Reads:  []string{"report"},
			Writes: []string{"label.text"},
			run:    (*Scene).publish,
		},
	}
}

// layout derives the camera viewport from the window. Without window
// geometry the last resize event stands in for it.
func (s *Scene) layout(f *Frame) {
	if w, ok := f.Window.Get(); ok {
		if w.ScaleFactor > 0 {
			s.scaleFactor = w.ScaleFactor
		}
		s.camera.SetViewport(w.Width, w.Height, s.scaleFactor)
		return
	}
	if n := len(f.Resizes); n > 0 {
		last := f.Resizes[n-1]
		s.camera.SetViewport(last.Width, last.Height, s.scaleFactor)
	}
}

func (s *Scene) emit(role Role, lines []string) {
	s.lines[role] = lines
	s.produced[role] = true
}

// publish rewrites every label that had at least one of its roles reported
// this tick.
func (s *Scene) publish(*Frame) {
	for _, l := range s.labels {
		dirty := false
		for _, r := range l.Roles {
			dirty = dirty || s.produced[r]
		}
		if !dirty {
			continue
		}

		var lines []string
		for _, r := range l.Roles {
			lines = append(lines, s.lines[r]...)
		}
		l.Text = strings.Join(lines, "\n")
	}
}

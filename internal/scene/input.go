package scene

// applyInput moves the player by Step on each axis with a held key. Keys
// add up independently, so diagonals are not normalized.
func (s *Scene) applyInput(f *Frame) {
	step := s.opts.Step
	if f.Keys.Right {
		s.player.Position[0] += step
	}
	if f.Keys.Left {
		s.player.Position[0] -= step
	}
	if f.Keys.Up {
		s.player.Position[1] += step
	}
	if f.Keys.Down {
		s.player.Position[1] -= step
	}
}

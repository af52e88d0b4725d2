package tui

// selection is the episode-list cursor. It starts unset; the first
// movement snaps it to index 0. Movement wraps at both ends of a
// non-empty list, and an empty list pins it to 0 with no wrap math.
type selection struct {
	index int
	set   bool
}

func (s *selection) Next(count int) {
	if !s.set || count == 0 {
		s.index, s.set = 0, true
		return
	}
	if s.index >= count-1 {
		s.index = 0
	} else {
		s.index++
	}
}

func (s *selection) Prev(count int) {
	if !s.set || count == 0 {
		s.index, s.set = 0, true
		return
	}
	if s.index == 0 {
		s.index = count - 1
	} else {
		s.index--
	}
}

package rubberband

import (
	"trove/internal/domain"
	"trove/internal/ui/services/selection"
)

// startThreshold is how far the pointer must travel from a press over
// an item before a deferred band starts, in cells.
const startThreshold = 5

// Service converts pointer drag geometry plus item bounding boxes into
// a selection set via axis-aligned intersection testing.
type Service struct {
	sel   *selection.Service
	state *State
}

// NewService creates a new rubber-band coordinator
func NewService(sel *selection.Service) *Service {
	return &Service{
		sel:   sel,
		state: &State{},
	}
}

// PointerDown begins a band. Over empty space the rectangle starts at
// the press point immediately; over an item the start is deferred
// until PointerMove crosses the threshold, so plain clicks and item
// drags are not swallowed. Only Ctrl (or Cmd) makes a band additive;
// Shift is a click modifier, and a Shift-started band still replaces
// the selection.
func (s *Service) PointerDown(p domain.Point, overItem bool, mods selection.Modifiers) {
	if overItem {
		s.state.Pending = true
		s.state.PressPoint = p
		s.state.Additive = mods.Ctrl
		return
	}
	s.start(p, mods.Ctrl)
	s.state.Band = domain.RectFromPoints(p, p)
}

// PointerMove updates the band and recomputes the selection against
// the visible items' rectangles.
func (s *Service) PointerMove(p domain.Point, items []ItemRect) {
	if s.state.Pending {
		dx := p.X - s.state.PressPoint.X
		if dx < 0 {
			dx = -dx
		}
		dy := p.Y - s.state.PressPoint.Y
		if dy < 0 {
			dy = -dy
		}
		if dx < startThreshold && dy < startThreshold {
			return
		}
		// The band starts retroactively from the original press
		// point, not from wherever the pointer is now.
		s.start(s.state.PressPoint, s.state.Additive)
	}

	if !s.state.Active {
		return
	}

	s.state.Band = domain.RectFromPoints(s.state.PressPoint, p)
	matches := s.intersect(items)
	if s.state.Additive {
		for _, key := range matches {
			s.sel.Add(key.Kind, key.ID)
		}
	} else {
		s.sel.Replace(matches)
	}
}

// PointerUp ends the band. The last computed selection stands; there
// is no separate commit step. Also fired by a window-level mouse-up so
// a release outside the container still ends the band.
func (s *Service) PointerUp() {
	s.state.Active = false
	s.state.Pending = false
	s.state.Band = domain.Rect{}
}

// Band returns the current rectangle for overlay drawing, and whether
// one is live
func (s *Service) Band() (domain.Rect, bool) {
	return s.state.Band, s.state.Active
}

// Pending reports whether a press over an item is waiting for the
// start threshold
func (s *Service) Pending() bool {
	return s.state.Pending
}

func (s *Service) start(origin domain.Point, additive bool) {
	s.state.Active = true
	s.state.Pending = false
	s.state.PressPoint = origin
	s.state.Additive = additive
	if !additive {
		s.sel.Clear()
	}
}

func (s *Service) intersect(items []ItemRect) []domain.Key {
	var matches []domain.Key
	for _, item := range items {
		if s.state.Band.Intersects(item.Rect) {
			matches = append(matches, item.Key)
		}
	}
	return matches
}

package state

import (
	"trove/internal/domain"
)

// AppState contains the UI state shared across handlers and views
type AppState struct {
	// Navigation
	Container domain.ContainerID
	Crumbs    []string // folder names from project root to the container

	// Visible items, in display order, and their bounding boxes in
	// container-local coordinates. Rects are recomputed after layout.
	Items []domain.EntityRef
	Rects map[domain.Key]domain.Rect

	// Cursor and viewport
	CursorIndex    int
	ViewportOffset int
	ViewportHeight int

	// Transient UI
	StatusMessage string
	BatchInFlight bool
	ShowHelp      bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Rects:          make(map[domain.Key]domain.Rect),
		ViewportHeight: 20,
	}
}

// ItemAt returns the visible item whose rect contains the point
func (s *AppState) ItemAt(p domain.Point) (domain.EntityRef, bool) {
	for _, item := range s.Items {
		if rect, ok := s.Rects[item.Key()]; ok && rect.Contains(p) {
			return item, true
		}
	}
	return domain.EntityRef{}, false
}

// ItemByKey returns a visible item by identity
func (s *AppState) ItemByKey(key domain.Key) (domain.EntityRef, bool) {
	for _, item := range s.Items {
		if item.Key() == key {
			return item, true
		}
	}
	return domain.EntityRef{}, false
}

// CursorItem returns the item under the keyboard cursor
func (s *AppState) CursorItem() (domain.EntityRef, bool) {
	if s.CursorIndex < 0 || s.CursorIndex >= len(s.Items) {
		return domain.EntityRef{}, false
	}
	return s.Items[s.CursorIndex], true
}

// SetItems swaps the visible item list and lays the rows out again.
// Each row occupies one full-width line; the rect's Y is the item's
// index in the full list, independent of scrolling.
func (s *AppState) SetItems(items []domain.EntityRef, rowWidth int) {
	s.Items = items
	s.Rects = make(map[domain.Key]domain.Rect, len(items))
	for i, item := range items {
		s.Rects[item.Key()] = domain.Rect{X: 0, Y: i, Width: rowWidth, Height: 1}
	}
	if s.CursorIndex >= len(items) {
		s.CursorIndex = len(items) - 1
	}
	if s.CursorIndex < 0 {
		s.CursorIndex = 0
	}
}

// ClampViewport keeps the cursor visible
func (s *AppState) ClampViewport() {
	if s.CursorIndex < s.ViewportOffset {
		s.ViewportOffset = s.CursorIndex
	}
	if s.CursorIndex >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.CursorIndex - s.ViewportHeight + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

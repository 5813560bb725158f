package selection

import (
	"sort"

	"trove/internal/domain"
	"trove/internal/ui/services/events"
)

// Service owns the set of currently selected entities
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new selection service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			Selected: make(map[domain.Kind]map[string]bool),
		},
		bus: bus,
	}
}

// Toggle flips membership of a (kind, id) pair
func (s *Service) Toggle(kind domain.Kind, id string) {
	key := domain.Key{Kind: kind, ID: id}
	if s.IsSelected(kind, id) {
		delete(s.state.Selected[kind], id)
		s.publishChange(nil, []domain.Key{key})
		return
	}
	s.add(kind, id)
	s.publishChange([]domain.Key{key}, nil)
}

// Add inserts a (kind, id) pair, never removing anything
func (s *Service) Add(kind domain.Kind, id string) {
	if s.IsSelected(kind, id) {
		return
	}
	s.add(kind, id)
	s.publishChange([]domain.Key{{Kind: kind, ID: id}}, nil)
}

// Replace swaps the whole selection for the given keys
func (s *Service) Replace(keys []domain.Key) {
	s.state.Selected = make(map[domain.Kind]map[string]bool)
	for _, key := range keys {
		s.add(key.Kind, key.ID)
	}
	s.publishChange(keys, nil)
}

// Clear empties the selection. Called on navigation: selection does
// not survive a container change.
func (s *Service) Clear() {
	if s.Count() == 0 {
		return
	}
	s.state.Selected = make(map[domain.Kind]map[string]bool)
	if s.bus != nil {
		s.bus.Publish(domain.SelectionClearedEvent{})
	}
}

// Remove drops the given keys from the selection, leaving the rest
func (s *Service) Remove(keys []domain.Key) {
	var removed []domain.Key
	for _, key := range keys {
		if s.IsSelected(key.Kind, key.ID) {
			delete(s.state.Selected[key.Kind], key.ID)
			removed = append(removed, key)
		}
	}
	if len(removed) > 0 {
		s.publishChange(nil, removed)
	}
}

// Click applies the click semantics shared by every kind.
//
// A plain click on a member of a multi-selection leaves the selection
// untouched so a drag of the whole group can start; a plain click
// anywhere else collapses the selection to that one item. A modified
// click folds the current selection in rather than discarding it:
// Ctrl/Cmd toggles the clicked item's membership, Shift always adds.
func (s *Service) Click(kind domain.Kind, id string, mods Modifiers) {
	switch {
	case mods.Ctrl:
		s.Toggle(kind, id)
	case mods.Shift:
		s.Add(kind, id)
	default:
		if s.IsSelected(kind, id) && s.Count() > 1 {
			return
		}
		s.Replace([]domain.Key{{Kind: kind, ID: id}})
	}
}

// IsSelected checks membership of a (kind, id) pair
func (s *Service) IsSelected(kind domain.Kind, id string) bool {
	return s.state.Selected[kind][id]
}

// Count returns the total number of selected entities across kinds
func (s *Service) Count() int {
	total := 0
	for _, ids := range s.state.Selected {
		total += len(ids)
	}
	return total
}

// CountOf returns the number of selected entities of one kind
func (s *Service) CountOf(kind domain.Kind) int {
	return len(s.state.Selected[kind])
}

// IDsOf returns the sorted selected ids of one kind
func (s *Service) IDsOf(kind domain.Kind) []string {
	ids := make([]string, 0, len(s.state.Selected[kind]))
	for id := range s.state.Selected[kind] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Keys returns every selected key, grouped by kind in display order
func (s *Service) Keys() []domain.Key {
	var keys []domain.Key
	for _, kind := range domain.Kinds {
		for _, id := range s.IDsOf(kind) {
			keys = append(keys, domain.Key{Kind: kind, ID: id})
		}
	}
	return keys
}

func (s *Service) add(kind domain.Kind, id string) {
	if s.state.Selected[kind] == nil {
		s.state.Selected[kind] = make(map[string]bool)
	}
	s.state.Selected[kind][id] = true
}

func (s *Service) publishChange(added, removed []domain.Key) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(domain.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   s.Count(),
	})
}

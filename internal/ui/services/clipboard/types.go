package clipboard

import "trove/internal/domain"

// Action is what a paste will do with a staged slot
type Action int

const (
	// Cut stages a move
	Cut Action = iota
	// Copy stages a duplicate
	Copy
)

// String returns the action's menu label
func (a Action) String() string {
	if a == Cut {
		return "Cut"
	}
	return "Copy"
}

// Slot is one kind's staged payload. Slots are single-use: any
// completed paste empties the slot regardless of action, so a Copy
// slot does not behave like a persistent OS clipboard.
type Slot struct {
	Action Action
	Items  []domain.EntityRef
}

// PastePlan is one consumed slot's work: the staged items and where
// they go. It is immutable once built, so Dispatch may read it from
// another goroutine.
type PastePlan struct {
	Kind            domain.Kind
	Action          Action
	Items           []domain.EntityRef
	TargetFolderID  string
	TargetProjectID string
}

// copySuffix disambiguates duplicated folder names so a paste never
// silently shadows the original.
const copySuffix = " (Copy)"

package dragdrop

import "trove/internal/domain"

// FolderTarget is an optional drop target. OK is false while the
// pointer is over empty space or a non-folder item.
type FolderTarget struct {
	FolderID string
	OK       bool
}

// DragEvent is the typed payload crossing the boundary from the input
// layer: what is being dragged and which folder, if any, the pointer
// is currently over.
type DragEvent struct {
	Subject    domain.DragSubject
	OverTarget FolderTarget
}

// Session is the ephemeral drag state: created on drag start,
// destroyed on drop or cancel. The dragged set is a frozen snapshot of
// the selection taken at start; it never changes during the session.
// A session carries exactly one kind.
type Session struct {
	Subject    domain.DragSubject
	DraggedIDs []string
	OverTarget FolderTarget

	draggedSet map[string]bool
}

// Carries reports whether the session's frozen snapshot contains id
func (s *Session) Carries(id string) bool {
	return s.draggedSet[id]
}

// Kind returns the single kind this session carries
func (s *Session) Kind() domain.Kind {
	return s.Subject.SubjectKind()
}

// DropPlan is the work a validated drop dispatches: which ids move into
// which folder. It is immutable once built, so Dispatch may read it
// from another goroutine.
type DropPlan struct {
	Kind     domain.Kind
	IDs      []string
	TargetID string
}

// TargetState describes the controller's state for rendering
type TargetState int

const (
	// Idle means no drag session is active
	Idle TargetState = iota
	// Dragging means a session is active with no target under pointer
	Dragging
	// OverValidTarget means the pointer is over a folder the session
	// may drop into
	OverValidTarget
	// OverInvalidTarget means the pointer is over a folder the drop
	// validation would reject
	OverInvalidTarget
)

// DropOutcome classifies what a drop did
type DropOutcome int

const (
	// DropCancelled means no mutation was attempted and selection is
	// preserved
	DropCancelled DropOutcome = iota
	// DropNoop means every item was already in place; success with no
	// mutation calls
	DropNoop
	// DropDispatched means move calls were dispatched; see the report
	DropDispatched
)

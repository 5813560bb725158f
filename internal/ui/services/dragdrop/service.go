package dragdrop

import (
	"context"
	"sort"
	"time"

	"trove/internal/domain"
	"trove/internal/ui/batch"
	"trove/internal/ui/services/events"
	"trove/internal/ui/services/selection"
)

// clickSuppressWindow is how long after a drop the synthetic trailing
// click is ignored, so the drop gesture cannot collapse the
// multi-selection it just moved.
const clickSuppressWindow = 400 * time.Millisecond

// Mover is the mutation collaborator the controller dispatches to.
// targetProjectID is empty for same-project moves.
type Mover interface {
	Move(ctx context.Context, kind domain.Kind, id, targetFolderID, targetProjectID string) error
}

// ItemSource resolves entity refs and folder ancestry for validation
type ItemSource interface {
	Entity(key domain.Key) (domain.EntityRef, bool)
	AncestorChain(folderID string) []string
}

// Service is the drag-transfer state machine: Idle, Dragging, over a
// valid or invalid target, back to Idle on drop or cancel.
type Service struct {
	bus    events.EventBus
	sel    *selection.Service
	source ItemSource
	mover  Mover
	limit  int

	session     *Session
	dragEndedAt time.Time
	now         func() time.Time
}

// NewService creates a new drag-transfer controller
func NewService(bus events.EventBus, sel *selection.Service, source ItemSource, mover Mover) *Service {
	return &Service{
		bus:    bus,
		sel:    sel,
		source: source,
		mover:  mover,
		limit:  batch.DefaultLimit,
		now:    time.Now,
	}
}

// SetConcurrency overrides the number of move calls in flight
func (s *Service) SetConcurrency(limit int) {
	s.limit = limit
}

// StartDrag opens a session for the grabbed item. If the same-kind
// selection contains the item, the entire same-kind selection is
// snapshotted; otherwise only the item itself. The snapshot is frozen
// for the session's lifetime.
func (s *Service) StartDrag(kind domain.Kind, id string) *Session {
	var ids []string
	if s.sel.IsSelected(kind, id) && s.sel.CountOf(kind) > 1 {
		ids = s.sel.IDsOf(kind)
	} else {
		ids = []string{id}
	}
	sort.Strings(ids)

	set := make(map[string]bool, len(ids))
	for _, dragged := range ids {
		set[dragged] = true
	}

	s.session = &Session{
		Subject:    domain.SubjectFor(kind, id),
		DraggedIDs: ids,
		draggedSet: set,
	}
	return s.session
}

// DragOver records the folder currently under the pointer. Anything
// that is not a folder container clears the target.
func (s *Service) DragOver(target FolderTarget) {
	if s.session == nil {
		return
	}
	s.session.OverTarget = target
}

// Session returns the active session for ghost rendering, or nil
func (s *Service) Session() *Session {
	return s.session
}

// State reports the controller state for rendering
func (s *Service) State() TargetState {
	if s.session == nil {
		return Idle
	}
	if !s.session.OverTarget.OK {
		return Dragging
	}
	if s.validateTarget(s.session.OverTarget.FolderID) != nil {
		return OverInvalidTarget
	}
	return OverValidTarget
}

// Cancel ends the session without touching selection or the network
func (s *Service) Cancel() {
	s.endDrag()
}

// Drop validates the current target and ends the session. The plan is
// non-nil only for DropDispatched; the caller runs it with Dispatch
// and settles it with Complete.
//
// Validation order: no target or a non-folder target cancels with
// selection preserved; a folder-kind drag onto a folder whose ancestor
// chain intersects the dragged set is a validation error; if every
// dragged item's parent already equals the target the drop succeeds
// with no mutation calls. Drop and Complete mutate selection and
// session state and must stay on the update goroutine.
func (s *Service) Drop() (DropOutcome, *DropPlan, error) {
	session := s.session
	if session == nil {
		return DropCancelled, nil, nil
	}
	s.endDrag()

	if !session.OverTarget.OK {
		return DropCancelled, nil, nil
	}
	targetID := session.OverTarget.FolderID

	if err := s.validateTargetFor(session, targetID); err != nil {
		return DropCancelled, nil, err
	}

	if s.allParentsEqual(session, targetID) {
		return DropNoop, nil, nil
	}

	return DropDispatched, &DropPlan{
		Kind:     session.Kind(),
		IDs:      session.DraggedIDs,
		TargetID: targetID,
	}, nil
}

// Dispatch runs the plan's move calls through the bounded pool and
// reports per-item results. It touches only the mover, so it is safe
// off the update goroutine while renders keep happening.
func (s *Service) Dispatch(ctx context.Context, plan *DropPlan) batch.Report {
	return batch.Run(ctx, plan.IDs, s.limit, func(ctx context.Context, id string) error {
		return s.mover.Move(ctx, plan.Kind, id, plan.TargetID, "")
	})
}

// SuppressClicks reports whether click and rubber-band-start handlers
// should ignore the event because a drag just ended
func (s *Service) SuppressClicks() bool {
	return s.now().Sub(s.dragEndedAt) < clickSuppressWindow
}

// validateTarget checks the active session against a prospective
// target folder without dropping
func (s *Service) validateTarget(targetID string) error {
	if s.session == nil {
		return nil
	}
	return s.validateTargetFor(s.session, targetID)
}

// validateTargetFor rejects folder drags whose target sits inside the
// dragged subtree. The walk covers the target's full ancestor chain,
// so dropping a folder onto its own grandchild is caught, not just a
// literal self-drop.
func (s *Service) validateTargetFor(session *Session, targetID string) error {
	if session.Kind() != domain.KindFolder {
		return nil
	}
	for _, ancestor := range s.source.AncestorChain(targetID) {
		if session.Carries(ancestor) {
			return domain.NewValidationError("cannot move a folder into itself or its own subtree")
		}
	}
	return nil
}

// allParentsEqual reports whether every dragged item already lives in
// the target folder
func (s *Service) allParentsEqual(session *Session, targetID string) bool {
	kind := session.Kind()
	for _, id := range session.DraggedIDs {
		ref, ok := s.source.Entity(domain.Key{Kind: kind, ID: id})
		if !ok || ref.ParentFolderID != targetID {
			return false
		}
	}
	return true
}

// Complete applies the post-batch selection rule and publishes the
// aggregate exactly once. Full success clears the selection; any
// failure keeps the failed items selected for retry. Must run on the
// update goroutine.
func (s *Service) Complete(plan *DropPlan, report batch.Report) {
	if report.Failed == 0 {
		s.sel.Clear()
	} else {
		var succeeded []domain.Key
		for _, res := range report.Results {
			if res.Err == nil {
				succeeded = append(succeeded, domain.Key{Kind: plan.Kind, ID: res.ID})
			}
		}
		s.sel.Remove(succeeded)
	}

	if s.bus != nil {
		if report.Succeeded > 0 {
			var moved []string
			for _, res := range report.Results {
				if res.Err == nil {
					moved = append(moved, res.ID)
				}
			}
			s.bus.Publish(domain.ItemsMovedEvent{
				Kind:           plan.Kind,
				IDs:            moved,
				TargetFolderID: plan.TargetID,
			})
		}
		s.bus.Publish(domain.BatchCompletedEvent{
			Action:    "move",
			Kind:      plan.Kind,
			Succeeded: report.Succeeded,
			Failed:    report.Failed,
		})
	}
}

func (s *Service) endDrag() {
	s.session = nil
	s.dragEndedAt = s.now()
}

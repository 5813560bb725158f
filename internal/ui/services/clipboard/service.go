package clipboard

import (
	"context"

	"trove/internal/domain"
	"trove/internal/ui/batch"
	"trove/internal/ui/services/events"
)

// Mover moves an entity into a target folder. targetProjectID is empty
// for same-project moves and set explicitly for cross-project ones, so
// a root-level cross-project move is distinguishable from a
// same-project folder move.
type Mover interface {
	Move(ctx context.Context, kind domain.Kind, id, targetFolderID, targetProjectID string) error
}

// Duplicator copies an entity into a target folder and returns the new
// id. nameHint overrides the copy's name when non-empty; an empty hint
// leaves naming to the collaborator.
type Duplicator interface {
	Duplicate(ctx context.Context, kind domain.Kind, id, targetFolderID, targetProjectID, nameHint string) (string, error)
}

// FolderTree resolves folder ancestry for the paste-into-self guard
type FolderTree interface {
	AncestorChain(folderID string) []string
}

// Service stages cut/copy payloads in three independent single-use
// slots, one per entity kind, and applies paste as a batch of move or
// duplicate calls with partial-failure reporting.
type Service struct {
	bus   events.EventBus
	mover Mover
	dup   Duplicator
	tree  FolderTree
	limit int
	slots map[domain.Kind]*Slot
}

// NewService creates a new clipboard transaction manager
func NewService(bus events.EventBus, mover Mover, dup Duplicator, tree FolderTree) *Service {
	return &Service{
		bus:   bus,
		mover: mover,
		dup:   dup,
		tree:  tree,
		limit: batch.DefaultLimit,
		slots: make(map[domain.Kind]*Slot),
	}
}

// SetConcurrency overrides the number of paste calls in flight
func (s *Service) SetConcurrency(limit int) {
	s.limit = limit
}

// CutItems stages a move for each kind present in items, replacing
// those kinds' slots. Kinds absent from items keep their slots.
func (s *Service) CutItems(items []domain.EntityRef) {
	s.stage(Cut, items)
}

// CopyItems stages a duplicate for each kind present in items
func (s *Service) CopyItems(items []domain.EntityRef) {
	s.stage(Copy, items)
}

// Slot returns the staged payload for a kind, if any
func (s *Service) Slot(kind domain.Kind) (Slot, bool) {
	slot, ok := s.slots[kind]
	if !ok {
		return Slot{}, false
	}
	return *slot, true
}

// HasAny reports whether any kind has a staged payload
func (s *Service) HasAny() bool {
	return len(s.slots) > 0
}

// Paste consumes one kind's staged slot for the target folder of the
// given project and returns the work as a plan, nil when the slot is
// empty. A folder paste whose target lies inside a staged folder's own
// subtree is rejected and leaves the slot intact; otherwise the slot
// is emptied here, before dispatch, success or failure of the later
// calls notwithstanding. The caller runs the plan with Dispatch and
// settles it with Complete. Paste mutates the slots and must stay on
// the update goroutine.
func (s *Service) Paste(kind domain.Kind, targetFolderID, targetProjectID string) (*PastePlan, error) {
	slot, ok := s.slots[kind]
	if !ok || len(slot.Items) == 0 {
		return nil, nil
	}

	if kind == domain.KindFolder {
		chain := s.tree.AncestorChain(targetFolderID)
		for _, item := range slot.Items {
			for _, ancestor := range chain {
				if ancestor == item.ID {
					return nil, domain.NewValidationError("cannot paste folder %q into itself or its own subtree", item.Name)
				}
			}
		}
	}

	// Single-use: the slot empties whatever happens to its items.
	delete(s.slots, kind)
	if s.bus != nil {
		s.bus.Publish(domain.ClipboardConsumedEvent{Kind: kind})
	}

	return &PastePlan{
		Kind:            kind,
		Action:          slot.Action,
		Items:           slot.Items,
		TargetFolderID:  targetFolderID,
		TargetProjectID: targetProjectID,
	}, nil
}

// Dispatch runs the plan's move or duplicate calls through the bounded
// pool. Cut items move; Copy items duplicate, with folder copies named
// "<name> (Copy)". It touches only the collaborators, so it is safe
// off the update goroutine.
func (s *Service) Dispatch(ctx context.Context, plan *PastePlan) batch.Report {
	byID := make(map[string]domain.EntityRef, len(plan.Items))
	ids := make([]string, 0, len(plan.Items))
	for _, item := range plan.Items {
		byID[item.ID] = item
		ids = append(ids, item.ID)
	}

	return batch.Run(ctx, ids, s.limit, func(ctx context.Context, id string) error {
		item := byID[id]
		if plan.Action == Cut {
			// Only cross-project moves carry an explicit project
			// target.
			projectID := ""
			if item.ProjectID != plan.TargetProjectID {
				projectID = plan.TargetProjectID
			}
			return s.mover.Move(ctx, plan.Kind, id, plan.TargetFolderID, projectID)
		}
		nameHint := ""
		if plan.Kind == domain.KindFolder {
			nameHint = item.Name + copySuffix
		}
		newID, err := s.dup.Duplicate(ctx, plan.Kind, id, plan.TargetFolderID, plan.TargetProjectID, nameHint)
		if err == nil && s.bus != nil {
			s.bus.Publish(domain.ItemDuplicatedEvent{Kind: plan.Kind, SourceID: id, NewID: newID})
		}
		return err
	})
}

// Complete publishes the aggregate for a dispatched paste exactly once
func (s *Service) Complete(plan *PastePlan, report batch.Report) {
	if s.bus == nil {
		return
	}
	actionName := "paste-move"
	if plan.Action == Copy {
		actionName = "paste-duplicate"
	}
	if plan.Action == Cut && report.Succeeded > 0 {
		var moved []string
		for _, res := range report.Results {
			if res.Err == nil {
				moved = append(moved, res.ID)
			}
		}
		s.bus.Publish(domain.ItemsMovedEvent{
			Kind:            plan.Kind,
			IDs:             moved,
			TargetFolderID:  plan.TargetFolderID,
			TargetProjectID: plan.TargetProjectID,
		})
	}
	s.bus.Publish(domain.BatchCompletedEvent{
		Action:    actionName,
		Kind:      plan.Kind,
		Succeeded: report.Succeeded,
		Failed:    report.Failed,
	})
}

func (s *Service) stage(action Action, items []domain.EntityRef) {
	grouped := make(map[domain.Kind][]domain.EntityRef)
	for _, item := range items {
		grouped[item.Kind] = append(grouped[item.Kind], item)
	}
	for kind, refs := range grouped {
		s.slots[kind] = &Slot{Action: action, Items: refs}
		if s.bus != nil {
			s.bus.Publish(domain.ClipboardStagedEvent{
				Kind:  kind,
				Cut:   action == Cut,
				Count: len(refs),
			})
		}
	}
}

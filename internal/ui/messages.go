package ui

import (
	"time"

	"trove/internal/eventbus"
	"trove/internal/ui/batch"
	"trove/internal/ui/services/clipboard"
	"trove/internal/ui/services/dragdrop"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// dropDoneMsg carries a settled drag-and-drop batch back to the update
// loop, where the selection rule is applied
type dropDoneMsg struct {
	plan   *dragdrop.DropPlan
	report batch.Report
}

// pasteEntry pairs one consumed slot's plan with its batch result
type pasteEntry struct {
	plan   *clipboard.PastePlan
	report batch.Report
}

// pasteDoneMsg carries the settled batches of pasting one or more slots
type pasteDoneMsg struct {
	entries []pasteEntry
}

// deleteDoneMsg carries the outcome of a delete
type deleteDoneMsg struct {
	count int
	err   error
}

// pagerDoneMsg is sent when the transcript or help pager exits
type pagerDoneMsg struct {
	err error
}

// clearStatusMsg expires the status bar message
type clearStatusMsg struct {
	stamp time.Time
}

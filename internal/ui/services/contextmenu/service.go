package contextmenu

import (
	"fmt"
	"strings"

	"trove/internal/domain"
	"trove/internal/ui/services/clipboard"
	"trove/internal/ui/services/selection"
)

// ItemSource resolves selected keys back to entity refs
type ItemSource interface {
	Entity(key domain.Key) (domain.EntityRef, bool)
}

// Service decides whether a context-menu action targets the full
// multi-selection or a single collapsed item, and which paste
// affordances the clipboard slots currently allow.
type Service struct {
	sel    *selection.Service
	clip   *clipboard.Service
	source ItemSource
}

// NewService creates a new context-menu resolver
func NewService(sel *selection.Service, clip *clipboard.Service, source ItemSource) *Service {
	return &Service{sel: sel, clip: clip, source: source}
}

// ResolveItem builds the menu for a right-clicked item. A member of
// the active multi-selection scopes the menu to the entire selection;
// any other item collapses the selection to itself first.
func (s *Service) ResolveItem(kind domain.Kind, id string) Menu {
	if s.sel.IsSelected(kind, id) && s.sel.Count() > 1 {
		targets := s.resolveTargets(s.sel.Keys())
		suffix := " (" + countSummary(targets) + ")"
		return Menu{
			Scope:   ScopeSelection,
			Targets: targets,
			Entries: []Entry{
				{Action: ActionCut, Label: "Cut" + suffix},
				{Action: ActionCopy, Label: "Copy" + suffix},
				{Action: ActionDelete, Label: "Delete" + suffix},
			},
		}
	}

	// Selection collapses to the clicked item before the menu opens.
	s.sel.Replace([]domain.Key{{Kind: kind, ID: id}})

	targets := s.resolveTargets([]domain.Key{{Kind: kind, ID: id}})
	entries := []Entry{
		{Action: ActionOpen, Label: "Open"},
		{Action: ActionRename, Label: "Rename"},
		{Action: ActionCut, Label: "Cut"},
		{Action: ActionCopy, Label: "Copy"},
		{Action: ActionDelete, Label: "Delete"},
	}

	// A folder offers pasting staged files straight into it, without
	// navigating inside first.
	if kind == domain.KindFolder {
		if slot, ok := s.clip.Slot(domain.KindFile); ok {
			entries = append(entries, Entry{
				Action:   ActionPasteInto,
				Kind:     domain.KindFile,
				FolderID: id,
				Label:    fmt.Sprintf("Paste %d %s into this folder", len(slot.Items), domain.KindFile.Label(len(slot.Items))),
			})
		}
	}

	return Menu{Scope: ScopeSingle, Targets: targets, Entries: entries}
}

// ResolveContainer builds the menu for an empty-space right-click. It
// clears the selection and offers one paste entry per non-empty slot,
// or a disabled placeholder when all slots are empty.
func (s *Service) ResolveContainer() Menu {
	s.sel.Clear()

	entries := []Entry{
		{Action: ActionNewFolder, Label: "New Folder"},
	}

	pasted := false
	for _, kind := range domain.Kinds {
		if slot, ok := s.clip.Slot(kind); ok {
			entries = append(entries, Entry{
				Action: ActionPaste,
				Kind:   kind,
				Label:  fmt.Sprintf("Paste (%d %s)", len(slot.Items), kind.Label(len(slot.Items))),
			})
			pasted = true
		}
	}
	if !pasted {
		entries = append(entries, Entry{Action: ActionPaste, Label: "Paste", Disabled: true})
	}

	return Menu{Scope: ScopeContainer, Entries: entries}
}

func (s *Service) resolveTargets(keys []domain.Key) []domain.EntityRef {
	var targets []domain.EntityRef
	for _, key := range keys {
		if ref, ok := s.source.Entity(key); ok {
			targets = append(targets, ref)
		}
	}
	return targets
}

// countSummary renders per-kind counts like "3 files, 2 folders"
func countSummary(targets []domain.EntityRef) string {
	counts := make(map[domain.Kind]int)
	for _, ref := range targets {
		counts[ref.Kind]++
	}
	var parts []string
	for _, kind := range domain.Kinds {
		if n := counts[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind.Label(n)))
		}
	}
	return strings.Join(parts, ", ")
}

package selection

import "trove/internal/domain"

// State holds the selection, partitioned by entity kind. Single and
// multi selection are the same underlying set; a "single selection" is
// just a set of size one.
type State struct {
	Selected map[domain.Kind]map[string]bool
}

// Modifiers captures the keyboard state accompanying a pointer event.
// Ctrl (or Cmd) is the only band modifier; Shift participates in click
// semantics only.
type Modifiers struct {
	Ctrl  bool // Ctrl or Cmd
	Shift bool
}

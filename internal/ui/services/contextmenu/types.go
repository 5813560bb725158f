package contextmenu

import "trove/internal/domain"

// Scope describes what a resolved menu operates on
type Scope int

const (
	// ScopeSingle targets one item
	ScopeSingle Scope = iota
	// ScopeSelection targets the whole multi-selection
	ScopeSelection
	// ScopeContainer targets the container background
	ScopeContainer
)

// ActionID identifies a menu action
type ActionID string

const (
	ActionOpen      ActionID = "open"
	ActionRename    ActionID = "rename"
	ActionCut       ActionID = "cut"
	ActionCopy      ActionID = "copy"
	ActionDelete    ActionID = "delete"
	ActionPaste     ActionID = "paste"
	ActionPasteInto ActionID = "paste-into"
	ActionNewFolder ActionID = "new-folder"
)

// Entry is one line of a resolved menu
type Entry struct {
	Action   ActionID
	Kind     domain.Kind // which clipboard slot a paste consumes
	FolderID string      // paste-into destination, when applicable
	Label    string
	Disabled bool
}

// Menu is what the resolver hands to the rendering layer: the scope,
// the refs the item actions apply to, and the entries to draw.
type Menu struct {
	Scope   Scope
	Targets []domain.EntityRef
	Entries []Entry
}

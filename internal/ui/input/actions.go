package input

// Action is a command the model should execute in response to input
type Action interface {
	isAction()
}

// MoveCursorAction moves the keyboard cursor by Delta rows
type MoveCursorAction struct{ Delta int }

// OpenAction opens the item under the cursor: folders navigate in,
// conversations open the transcript pager
type OpenAction struct{}

// NavigateUpAction leaves the current folder
type NavigateUpAction struct{}

// SwitchProjectAction cycles to the next project
type SwitchProjectAction struct{}

// ToggleSelectAction toggles selection of the cursor item
type ToggleSelectAction struct{}

// SelectAllAction selects every visible item
type SelectAllAction struct{}

// ClearSelectionAction empties the selection
type ClearSelectionAction struct{}

// CutAction stages the selection for a move
type CutAction struct{}

// CopyAction stages the selection for duplication
type CopyAction struct{}

// PasteAction applies the staged slots into the current container
type PasteAction struct{}

// NewFolderRequestAction opens the new-folder prompt
type NewFolderRequestAction struct{}

// RenameRequestAction opens the rename prompt for the cursor item
type RenameRequestAction struct{}

// NewFolderAction creates a folder with the entered name
type NewFolderAction struct{ Name string }

// RenameAction renames the cursor item to the entered name
type RenameAction struct{ Name string }

// DeleteRequestAction asks for delete confirmation
type DeleteRequestAction struct{}

// DeleteConfirmedAction deletes the pending items
type DeleteConfirmedAction struct{}

// HelpAction shows the keybinding help pager
type HelpAction struct{}

// QuitAction exits the application
type QuitAction struct{}

func (MoveCursorAction) isAction()      {}
func (OpenAction) isAction()            {}
func (NavigateUpAction) isAction()      {}
func (SwitchProjectAction) isAction()   {}
func (ToggleSelectAction) isAction()    {}
func (SelectAllAction) isAction()       {}
func (ClearSelectionAction) isAction()  {}
func (CutAction) isAction()             {}
func (CopyAction) isAction()            {}
func (PasteAction) isAction()           {}
func (NewFolderRequestAction) isAction() {}
func (RenameRequestAction) isAction()    {}
func (NewFolderAction) isAction()        {}
func (RenameAction) isAction()          {}
func (DeleteRequestAction) isAction()   {}
func (DeleteConfirmedAction) isAction() {}
func (HelpAction) isAction()            {}
func (QuitAction) isAction()            {}

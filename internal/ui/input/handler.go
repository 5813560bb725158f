package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeNewFolder
	ModeRename
	ModeConfirmDelete
)

// Handler routes key events by mode. Text-entry modes (new folder,
// rename) share one text input; the confirm mode is y/n only.
type Handler struct {
	mode      Mode
	textInput textinput.Model
}

// New creates a new input handler in normal mode
func New() *Handler {
	ti := textinput.New()
	ti.CharLimit = 120
	return &Handler{mode: ModeNormal, textInput: ti}
}

// Mode returns the current input mode
func (h *Handler) Mode() Mode {
	return h.mode
}

// PromptLabel returns the label shown next to the text input, empty
// outside text-entry modes
func (h *Handler) PromptLabel() string {
	switch h.mode {
	case ModeNewFolder:
		return "New folder"
	case ModeRename:
		return "Rename to"
	case ModeConfirmDelete:
		return "Delete selected? (y/n)"
	default:
		return ""
	}
}

// PromptView renders the shared text input
func (h *Handler) PromptView() string {
	if h.mode == ModeNewFolder || h.mode == ModeRename {
		return h.textInput.View()
	}
	return ""
}

// EnterTextMode switches to a text-entry mode with a prefilled value
func (h *Handler) EnterTextMode(mode Mode, prefill string) tea.Cmd {
	h.mode = mode
	h.textInput.Reset()
	h.textInput.SetValue(prefill)
	h.textInput.CursorEnd()
	h.textInput.Focus()
	return textinput.Blink
}

// EnterConfirm switches to the delete confirmation mode
func (h *Handler) EnterConfirm() {
	h.mode = ModeConfirmDelete
}

// HandleKey processes a key message in the current mode
func (h *Handler) HandleKey(msg tea.KeyMsg) ([]Action, tea.Cmd) {
	switch h.mode {
	case ModeNormal:
		return h.handleNormal(msg), nil
	case ModeNewFolder, ModeRename:
		return h.handleText(msg)
	case ModeConfirmDelete:
		return h.handleConfirm(msg), nil
	}
	return nil, nil
}

func (h *Handler) handleNormal(msg tea.KeyMsg) []Action {
	switch msg.String() {
	case "up", "k":
		return []Action{MoveCursorAction{Delta: -1}}
	case "down", "j":
		return []Action{MoveCursorAction{Delta: 1}}
	case "pgup":
		return []Action{MoveCursorAction{Delta: -10}}
	case "pgdown":
		return []Action{MoveCursorAction{Delta: 10}}
	case "enter", "l":
		return []Action{OpenAction{}}
	case "backspace", "h":
		return []Action{NavigateUpAction{}}
	case "tab":
		return []Action{SwitchProjectAction{}}
	case " ":
		return []Action{ToggleSelectAction{}}
	case "a":
		return []Action{SelectAllAction{}}
	case "esc":
		return []Action{ClearSelectionAction{}}
	case "x":
		return []Action{CutAction{}}
	case "c":
		return []Action{CopyAction{}}
	case "v":
		return []Action{PasteAction{}}
	case "n":
		return []Action{NewFolderRequestAction{}}
	case "r":
		return []Action{RenameRequestAction{}}
	case "d":
		return []Action{DeleteRequestAction{}}
	case "?":
		return []Action{HelpAction{}}
	case "q", "ctrl+c":
		return []Action{QuitAction{}}
	}
	return nil
}

func (h *Handler) handleText(msg tea.KeyMsg) ([]Action, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := h.textInput.Value()
		mode := h.mode
		h.exitToNormal()
		if value == "" {
			return nil, nil
		}
		if mode == ModeNewFolder {
			return []Action{NewFolderAction{Name: value}}, nil
		}
		return []Action{RenameAction{Name: value}}, nil
	case "esc":
		h.exitToNormal()
		return nil, nil
	}

	var cmd tea.Cmd
	h.textInput, cmd = h.textInput.Update(msg)
	return nil, cmd
}

func (h *Handler) handleConfirm(msg tea.KeyMsg) []Action {
	switch msg.String() {
	case "y", "enter":
		h.exitToNormal()
		return []Action{DeleteConfirmedAction{}}
	case "n", "esc":
		h.exitToNormal()
	}
	return nil
}

func (h *Handler) exitToNormal() {
	h.mode = ModeNormal
	h.textInput.Blur()
	h.textInput.Reset()
}

package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNormalModeKeymap(t *testing.T) {
	t.Parallel()
	h := New()

	cases := []struct {
		key  string
		want Action
	}{
		{"j", MoveCursorAction{Delta: 1}},
		{"k", MoveCursorAction{Delta: -1}},
		{"enter", OpenAction{}},
		{"h", NavigateUpAction{}},
		{" ", ToggleSelectAction{}},
		{"a", SelectAllAction{}},
		{"x", CutAction{}},
		{"c", CopyAction{}},
		{"v", PasteAction{}},
		{"d", DeleteRequestAction{}},
		{"q", QuitAction{}},
	}
	for _, tc := range cases {
		actions, _ := h.HandleKey(key(tc.key))
		require.Len(t, actions, 1, "key %q", tc.key)
		require.Equal(t, tc.want, actions[0], "key %q", tc.key)
	}

	actions, _ := h.HandleKey(key("z"))
	require.Empty(t, actions, "unbound keys do nothing")
}

func TestNewFolderPromptFlow(t *testing.T) {
	t.Parallel()
	h := New()

	actions, _ := h.HandleKey(key("n"))
	require.Equal(t, []Action{NewFolderRequestAction{}}, actions)

	h.EnterTextMode(ModeNewFolder, "")
	require.Equal(t, ModeNewFolder, h.Mode())
	require.Equal(t, "New folder", h.PromptLabel())

	// Typed characters go to the text input, not the keymap.
	actions, _ = h.HandleKey(key("x"))
	require.Empty(t, actions, "'x' must not cut while typing a folder name")

	actions, _ = h.HandleKey(key("enter"))
	require.Equal(t, []Action{NewFolderAction{Name: "x"}}, actions)
	require.Equal(t, ModeNormal, h.Mode())
}

func TestEmptyTextCommitIsDiscarded(t *testing.T) {
	t.Parallel()
	h := New()

	h.EnterTextMode(ModeNewFolder, "")
	actions, _ := h.HandleKey(key("enter"))
	require.Empty(t, actions, "committing an empty name does nothing")
	require.Equal(t, ModeNormal, h.Mode())
}

func TestRenamePrefillsCurrentName(t *testing.T) {
	t.Parallel()
	h := New()

	h.EnterTextMode(ModeRename, "notes.md")
	actions, _ := h.HandleKey(key("enter"))
	require.Equal(t, []Action{RenameAction{Name: "notes.md"}}, actions)
}

func TestEscCancelsTextMode(t *testing.T) {
	t.Parallel()
	h := New()

	h.EnterTextMode(ModeRename, "notes.md")
	actions, _ := h.HandleKey(key("esc"))
	require.Empty(t, actions)
	require.Equal(t, ModeNormal, h.Mode())
}

func TestConfirmMode(t *testing.T) {
	t.Parallel()
	h := New()

	h.EnterConfirm()
	require.Equal(t, ModeConfirmDelete, h.Mode())

	actions, _ := h.HandleKey(key("y"))
	require.Equal(t, []Action{DeleteConfirmedAction{}}, actions)
	require.Equal(t, ModeNormal, h.Mode())

	h.EnterConfirm()
	actions, _ = h.HandleKey(key("n"))
	require.Empty(t, actions, "declining produces no action")
	require.Equal(t, ModeNormal, h.Mode())
}

package contextmenu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"trove/internal/domain"
	"trove/internal/ui/services/clipboard"
	"trove/internal/ui/services/events"
	"trove/internal/ui/services/selection"
)

// fakeSource serves refs for any key thrown at it
type fakeSource struct{}

func (fakeSource) Entity(key domain.Key) (domain.EntityRef, bool) {
	return domain.EntityRef{ID: key.ID, Kind: key.Kind, Name: key.ID, ProjectID: "p1"}, true
}

func (fakeSource) AncestorChain(folderID string) []string { return nil }

func setup() (*selection.Service, *clipboard.Service, *Service) {
	sel := selection.NewService(&events.NullBus{})
	clip := clipboard.NewService(&events.NullBus{}, nil, nil, fakeSource{})
	return sel, clip, NewService(sel, clip, fakeSource{})
}

func TestMenuOnSelectionMemberScopesToWholeSelection(t *testing.T) {
	t.Parallel()
	sel, _, svc := setup()

	sel.Add(domain.KindFile, "f1")
	sel.Add(domain.KindFile, "f2")
	sel.Add(domain.KindFile, "f3")
	sel.Add(domain.KindFolder, "d1")
	sel.Add(domain.KindFolder, "d2")

	menu := svc.ResolveItem(domain.KindFile, "f2")
	require.Equal(t, ScopeSelection, menu.Scope)
	require.Len(t, menu.Targets, 5, "the action targets every selected item across kinds")
	require.Equal(t, 5, sel.Count(), "resolving on a member must not disturb the selection")

	labels := make([]string, 0, len(menu.Entries))
	for _, e := range menu.Entries {
		labels = append(labels, e.Label)
	}
	require.Contains(t, labels, "Cut (2 folders, 3 files)")
	require.Contains(t, labels, "Delete (2 folders, 3 files)")
	require.NotContains(t, labels, "Open", "open and rename are single-target actions")
}

func TestMenuOnNonMemberCollapsesSelectionFirst(t *testing.T) {
	t.Parallel()
	sel, _, svc := setup()

	sel.Add(domain.KindFile, "f1")
	sel.Add(domain.KindFile, "f2")

	menu := svc.ResolveItem(domain.KindFile, "f9")
	require.Equal(t, ScopeSingle, menu.Scope)
	require.Len(t, menu.Targets, 1)
	require.Equal(t, "f9", menu.Targets[0].ID)

	require.Equal(t, 1, sel.Count(), "right-clicking an outsider collapses the selection to it")
	require.True(t, sel.IsSelected(domain.KindFile, "f9"))
}

func TestSingleItemMenuEntries(t *testing.T) {
	t.Parallel()
	_, _, svc := setup()

	menu := svc.ResolveItem(domain.KindConversation, "c1")
	var actions []ActionID
	for _, e := range menu.Entries {
		actions = append(actions, e.Action)
	}
	require.Equal(t, []ActionID{ActionOpen, ActionRename, ActionCut, ActionCopy, ActionDelete}, actions)
}

func TestFolderMenuOffersPasteIntoWhenFilesStaged(t *testing.T) {
	t.Parallel()
	_, clip, svc := setup()

	clip.CutItems([]domain.EntityRef{
		{ID: "f1", Kind: domain.KindFile, Name: "a.md"},
		{ID: "f2", Kind: domain.KindFile, Name: "b.md"},
	})

	menu := svc.ResolveItem(domain.KindFolder, "d1")
	var pasteInto *Entry
	for i := range menu.Entries {
		if menu.Entries[i].Action == ActionPasteInto {
			pasteInto = &menu.Entries[i]
		}
	}
	require.NotNil(t, pasteInto, "a folder with staged files offers direct paste-into")
	require.Equal(t, "Paste 2 files into this folder", pasteInto.Label)
	require.Equal(t, "d1", pasteInto.FolderID)
	require.Equal(t, domain.KindFile, pasteInto.Kind)
}

func TestFolderMenuWithoutStagedFilesHasNoPasteInto(t *testing.T) {
	t.Parallel()
	_, _, svc := setup()

	menu := svc.ResolveItem(domain.KindFolder, "d1")
	for _, e := range menu.Entries {
		require.NotEqual(t, ActionPasteInto, e.Action)
	}
}

func TestContainerMenuClearsSelection(t *testing.T) {
	t.Parallel()
	sel, _, svc := setup()

	sel.Add(domain.KindFile, "f1")
	menu := svc.ResolveContainer()

	require.Equal(t, ScopeContainer, menu.Scope)
	require.Zero(t, sel.Count(), "empty-space right-click deselects everything")
}

func TestContainerMenuPastePerStagedKind(t *testing.T) {
	t.Parallel()
	_, clip, svc := setup()

	clip.CutItems([]domain.EntityRef{
		{ID: "d1", Kind: domain.KindFolder, Name: "Papers"},
	})
	clip.CopyItems([]domain.EntityRef{
		{ID: "c1", Kind: domain.KindConversation, Name: "Chat"},
		{ID: "c2", Kind: domain.KindConversation, Name: "Chat 2"},
	})

	menu := svc.ResolveContainer()
	var labels []string
	for _, e := range menu.Entries {
		if e.Action == ActionPaste {
			require.False(t, e.Disabled)
			labels = append(labels, e.Label)
		}
	}
	require.Equal(t, []string{"Paste (1 folder)", "Paste (2 conversations)"}, labels)
}

func TestContainerMenuDisabledPasteWhenNothingStaged(t *testing.T) {
	t.Parallel()
	_, _, svc := setup()

	menu := svc.ResolveContainer()
	require.Len(t, menu.Entries, 2)
	require.Equal(t, ActionNewFolder, menu.Entries[0].Action)
	require.Equal(t, ActionPaste, menu.Entries[1].Action)
	require.True(t, menu.Entries[1].Disabled, "an empty clipboard shows a greyed-out paste")
}

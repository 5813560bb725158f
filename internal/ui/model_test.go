package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"trove/internal/config"
	"trove/internal/domain"
	"trove/internal/ui/batch"
	"trove/internal/workspace"
)

func TestBatchNotice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		verb   string
		kind   domain.Kind
		report batch.Report
		want   string
	}{
		{"moved", domain.KindFile, batch.Report{Succeeded: 1}, "File moved"},
		{"moved", domain.KindFile, batch.Report{Succeeded: 4}, "4 files moved"},
		{"moved", domain.KindFolder, batch.Report{Succeeded: 2}, "2 folders moved"},
		{"copied", domain.KindConversation, batch.Report{Succeeded: 1}, "Conversation copied"},
		{"moved", domain.KindFile, batch.Report{Failed: 3}, "Could not move 3 files"},
		{"copied", domain.KindFile, batch.Report{Failed: 2}, "Could not copy 2 files"},
		{"copied", domain.KindFolder, batch.Report{Failed: 1}, "Could not copy 1 folder"},
		{"moved", domain.KindFile, batch.Report{Succeeded: 3, Failed: 1}, "Some items failed (3 succeeded, 1 failed)"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, batchNotice(tc.verb, tc.kind, tc.report))
	}
}

func TestToLocalAccountsForHeaderAndScroll(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.state.ViewportOffset = 5

	p := m.toLocal(12, 3)
	require.Equal(t, 12, p.X)
	require.Equal(t, 6, p.Y, "terminal y translates past the header and scroll offset")
}

func TestNavigateUpFromRootStaysPut(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	before := m.state.Container
	m.navigateUp()
	require.Equal(t, before, m.state.Container)
}

func TestNavigationClearsSelectionButNotClipboard(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	require.NotEmpty(t, m.state.Items)

	item := m.state.Items[len(m.state.Items)-1]
	m.sel.Add(item.Kind, item.ID)
	m.clip.CopyItems([]domain.EntityRef{item})

	var folderID string
	for _, it := range m.state.Items {
		if it.Kind == domain.KindFolder {
			folderID = it.ID
			break
		}
	}
	require.NotEmpty(t, folderID, "the seed workspace has a root folder")

	m.navigateTo(domain.ContainerID{ProjectID: m.state.Container.ProjectID, FolderID: folderID})
	require.Zero(t, m.sel.Count(), "selection does not survive navigation")
	require.True(t, m.clip.HasAny(), "the clipboard does")
}

func TestDropCmdSettlesCancelsOnTheUpdateLoop(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	item := m.state.Items[len(m.state.Items)-1]

	m.sel.Add(item.Kind, item.ID)
	m.drag.StartDrag(item.Kind, item.ID)

	// No target under the pointer: the drop cancels without a command.
	cmd := m.dropCmd()
	require.Nil(t, cmd)
	require.False(t, m.state.BatchInFlight, "a cancelled drop never enters the batch path")
	require.Nil(t, m.drag.Session())
	require.True(t, m.sel.IsSelected(item.Kind, item.ID))
}

func TestPasteCmdConsumesSlotsBeforeTheCommandRuns(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	item := m.state.Items[len(m.state.Items)-1]

	m.clip.CutItems([]domain.EntityRef{item})

	cmd := m.pasteCmd(m.pasteKinds(), m.state.Container)
	require.NotNil(t, cmd)
	require.True(t, m.state.BatchInFlight)
	require.False(t, m.clip.HasAny(), "slots empty on the update loop, not in the command goroutine")

	done, ok := cmd().(pasteDoneMsg)
	require.True(t, ok)
	require.Len(t, done.entries, 1)
	require.Zero(t, done.entries[0].report.Failed)

	m.finishPaste(done)
	require.False(t, m.state.BatchInFlight)
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	store := workspace.NewStore(nil)
	workspace.Seed(store)
	m := NewModel(nil, config.DefaultConfig(), store)
	m.width = 80
	m.state.ViewportHeight = 20
	m.refreshItems()
	return m
}

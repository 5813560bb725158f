package workspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"trove/internal/domain"
)

// buildWorkspace assembles a small two-project tree:
//
//	p1: root ─ d1 ─ d2 ─ d3
//	           │    └ f2, c1
//	           └ f1
//	p2: (empty root)
func buildWorkspace(t *testing.T) *Store {
	t.Helper()
	s := NewStore(nil)
	s.AddProject(domain.Project{ID: "p1", Name: "Research"})
	s.AddProject(domain.Project{ID: "p2", Name: "Personal"})
	s.AddFolder(domain.Folder{ID: "d1", Name: "Papers", ProjectID: "p1"})
	s.AddFolder(domain.Folder{ID: "d2", Name: "Drafts", ParentFolderID: "d1", ProjectID: "p1"})
	s.AddFolder(domain.Folder{ID: "d3", Name: "Old", ParentFolderID: "d2", ProjectID: "p1"})
	s.AddFile(domain.File{ID: "f1", Name: "notes.md", ProjectID: "p1"})
	s.AddFile(domain.File{ID: "f2", Name: "draft.md", ParentFolderID: "d2", ProjectID: "p1"})
	s.AddConversation(domain.Conversation{ID: "c1", Title: "Review chat", ParentFolderID: "d2", ProjectID: "p1"})
	return s
}

func TestItemsInOrdersFoldersFilesConversations(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	items := s.ItemsIn(domain.ContainerID{ProjectID: "p1", FolderID: "d2"})
	require.Len(t, items, 3)
	require.Equal(t, domain.KindFolder, items[0].Kind)
	require.Equal(t, "Old", items[0].Name)
	require.Equal(t, domain.KindFile, items[1].Kind)
	require.Equal(t, domain.KindConversation, items[2].Kind)
}

func TestAncestorChainWalksToRoot(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	require.Equal(t, []string{"d3", "d2", "d1"}, s.AncestorChain("d3"))
	require.Equal(t, []string{"d1"}, s.AncestorChain("d1"))
	require.Nil(t, s.AncestorChain(""), "the project root has no chain")
	require.Nil(t, s.AncestorChain("missing"))
}

func TestMoveFileBetweenFolders(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	err := s.Move(context.Background(), domain.KindFile, "f1", "d2", "")
	require.NoError(t, err)

	f, ok := s.File("f1")
	require.True(t, ok)
	require.Equal(t, "d2", f.ParentFolderID)
	require.Equal(t, "p1", f.ProjectID, "a same-project move keeps the project")
}

func TestMoveToUnknownTargetFails(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	require.Error(t, s.Move(context.Background(), domain.KindFile, "f1", "nope", ""))
	require.Error(t, s.Move(context.Background(), domain.KindFile, "missing", "d1", ""))

	f, _ := s.File("f1")
	require.Empty(t, f.ParentFolderID, "a failed move leaves the entity where it was")
}

func TestMoveFolderIntoOwnSubtreeRejected(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	err := s.Move(context.Background(), domain.KindFolder, "d1", "d3", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "itself or its own subtree")

	err = s.Move(context.Background(), domain.KindFolder, "d1", "d1", "")
	require.Error(t, err, "a literal self-drop is the degenerate case of the same guard")

	f, _ := s.Folder("d1")
	require.Empty(t, f.ParentFolderID)
}

func TestCrossProjectFolderMoveCarriesSubtree(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	err := s.Move(context.Background(), domain.KindFolder, "d1", "", "p2")
	require.NoError(t, err)

	for _, id := range []string{"d1", "d2", "d3"} {
		f, _ := s.Folder(id)
		require.Equal(t, "p2", f.ProjectID, "folder %s should follow its subtree root", id)
	}
	f2, _ := s.File("f2")
	require.Equal(t, "p2", f2.ProjectID)
	c1, _ := s.Conversation("c1")
	require.Equal(t, "p2", c1.ProjectID)

	// The subtree is gone from the old project's listing.
	require.Empty(t, s.ItemsIn(domain.ContainerID{ProjectID: "p1", FolderID: "d1"}))
}

func TestCrossProjectMoveTargetFolderMustMatchProject(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	// d2 lives in p1; asking for it as a target inside p2 is incoherent.
	err := s.Move(context.Background(), domain.KindFile, "f1", "d2", "p2")
	require.Error(t, err)
}

func TestDuplicateFileGetsFreshID(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	newID, err := s.Duplicate(context.Background(), domain.KindFile, "f2", "", "", "")
	require.NoError(t, err)
	require.NotEqual(t, "f2", newID)

	cp, ok := s.File(newID)
	require.True(t, ok)
	require.Equal(t, "draft.md", cp.Name, "an empty hint keeps the source name")
	require.Empty(t, cp.ParentFolderID)

	src, _ := s.File("f2")
	require.Equal(t, "d2", src.ParentFolderID, "the source stays put")
}

func TestDuplicateFolderCopiesWholeSubtree(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	newID, err := s.Duplicate(context.Background(), domain.KindFolder, "d1", "", "", "Papers (Copy)")
	require.NoError(t, err)

	cp, ok := s.Folder(newID)
	require.True(t, ok)
	require.Equal(t, "Papers (Copy)", cp.Name)

	// The copy has its own Drafts/Old chain with fresh ids.
	inner := s.ItemsIn(domain.ContainerID{ProjectID: "p1", FolderID: newID})
	require.Len(t, inner, 1)
	require.Equal(t, "Drafts", inner[0].Name)
	require.NotEqual(t, "d2", inner[0].ID)

	deeper := s.ItemsIn(domain.ContainerID{ProjectID: "p1", FolderID: inner[0].ID})
	require.Len(t, deeper, 3, "nested folders, files and conversations all come along")

	// Originals untouched.
	orig := s.ItemsIn(domain.ContainerID{ProjectID: "p1", FolderID: "d2"})
	require.Len(t, orig, 3)
}

func TestDuplicateFolderIntoOwnSubtreeRejected(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	_, err := s.Duplicate(context.Background(), domain.KindFolder, "d1", "d3", "", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "itself or its own subtree")
}

func TestCreateFolder(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	folder, err := s.CreateFolder("Inbox", domain.ContainerID{ProjectID: "p1", FolderID: "d1"})
	require.NoError(t, err)
	require.NotEmpty(t, folder.ID)
	require.Equal(t, "d1", folder.ParentFolderID)

	_, err = s.CreateFolder("", domain.ContainerID{ProjectID: "p1"})
	require.Error(t, err, "folder names must be non-empty")

	_, err = s.CreateFolder("X", domain.ContainerID{ProjectID: "nope"})
	require.Error(t, err)
}

func TestRename(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	require.NoError(t, s.Rename(domain.Key{Kind: domain.KindConversation, ID: "c1"}, "Final review"))
	c, _ := s.Conversation("c1")
	require.Equal(t, "Final review", c.Title)

	require.Error(t, s.Rename(domain.Key{Kind: domain.KindFile, ID: "missing"}, "x"))
	require.Error(t, s.Rename(domain.Key{Kind: domain.KindFile, ID: "f1"}, ""))
}

func TestDeleteFolderRemovesSubtree(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	err := s.Delete(context.Background(), []domain.Key{{Kind: domain.KindFolder, ID: "d2"}})
	require.NoError(t, err)

	_, ok := s.Folder("d2")
	require.False(t, ok)
	_, ok = s.Folder("d3")
	require.False(t, ok, "nested folders go with their parent")
	_, ok = s.File("f2")
	require.False(t, ok)
	_, ok = s.Conversation("c1")
	require.False(t, ok)

	_, ok = s.Folder("d1")
	require.True(t, ok, "the parent of the deleted folder survives")
	_, ok = s.File("f1")
	require.True(t, ok)
}

func TestCancelledContextStopsMutations(t *testing.T) {
	t.Parallel()
	s := buildWorkspace(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, s.Move(ctx, domain.KindFile, "f1", "d1", ""))
	f, _ := s.File("f1")
	require.Empty(t, f.ParentFolderID)

	_, err := s.Duplicate(ctx, domain.KindFile, "f1", "", "", "")
	require.Error(t, err)
}

package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"trove/internal/domain"
)

// Move reparents an entity under targetFolderID ("" means the project
// root). A non-empty targetProjectID moves the entity across projects;
// folder subtrees carry their contents with them.
func (s *Store) Move(ctx context.Context, kind domain.Kind, id, targetFolderID, targetProjectID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.entityLocked(domain.Key{Kind: kind, ID: id})
	if !ok {
		return fmt.Errorf("%s %q not found", kind, id)
	}

	projectID := targetProjectID
	if projectID == "" {
		projectID = ref.ProjectID
	}
	if _, ok := s.projects[projectID]; !ok {
		return fmt.Errorf("project %q not found", projectID)
	}
	if targetFolderID != "" {
		target, ok := s.folders[targetFolderID]
		if !ok {
			return fmt.Errorf("target folder %q not found", targetFolderID)
		}
		if target.ProjectID != projectID {
			return fmt.Errorf("target folder %q is not in project %q", targetFolderID, projectID)
		}
	}

	switch kind {
	case domain.KindFile:
		f := s.files[id]
		f.ParentFolderID = targetFolderID
		f.ProjectID = projectID
	case domain.KindConversation:
		c := s.conversations[id]
		c.ParentFolderID = targetFolderID
		c.ProjectID = projectID
	case domain.KindFolder:
		// The store is the system of record, so it re-checks the cycle
		// guard even though the UI validates before dispatching.
		for _, ancestor := range s.ancestorChainLocked(targetFolderID) {
			if ancestor == id {
				return fmt.Errorf("cannot move folder %q into itself or its own subtree", id)
			}
		}
		f := s.folders[id]
		f.ParentFolderID = targetFolderID
		if f.ProjectID != projectID {
			s.reprojectSubtreeLocked(id, projectID)
		}
		f.ProjectID = projectID
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}

	return nil
}

// reprojectSubtreeLocked moves every descendant of a folder into the
// given project
func (s *Store) reprojectSubtreeLocked(folderID, projectID string) {
	for id, f := range s.folders {
		if f.ParentFolderID == folderID {
			f.ProjectID = projectID
			s.reprojectSubtreeLocked(id, projectID)
		}
	}
	for _, f := range s.files {
		if f.ParentFolderID == folderID {
			f.ProjectID = projectID
		}
	}
	for _, c := range s.conversations {
		if c.ParentFolderID == folderID {
			c.ProjectID = projectID
		}
	}
}

// Duplicate copies an entity into targetFolderID and returns the new
// id. nameHint overrides the copy's name when non-empty; otherwise the
// store keeps the source name. Folder duplication copies the whole
// subtree.
func (s *Store) Duplicate(ctx context.Context, kind domain.Kind, id, targetFolderID, targetProjectID, nameHint string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.entityLocked(domain.Key{Kind: kind, ID: id})
	if !ok {
		return "", fmt.Errorf("%s %q not found", kind, id)
	}

	projectID := targetProjectID
	if projectID == "" {
		projectID = ref.ProjectID
	}
	if _, ok := s.projects[projectID]; !ok {
		return "", fmt.Errorf("project %q not found", projectID)
	}
	if targetFolderID != "" {
		if _, ok := s.folders[targetFolderID]; !ok {
			return "", fmt.Errorf("target folder %q not found", targetFolderID)
		}
	}

	switch kind {
	case domain.KindFile:
		src := s.files[id]
		cp := *src
		cp.ID = uuid.NewString()
		cp.ParentFolderID = targetFolderID
		cp.ProjectID = projectID
		if nameHint != "" {
			cp.Name = nameHint
		}
		s.files[cp.ID] = &cp
		return cp.ID, nil
	case domain.KindConversation:
		src := s.conversations[id]
		cp := *src
		cp.ID = uuid.NewString()
		cp.ParentFolderID = targetFolderID
		cp.ProjectID = projectID
		if nameHint != "" {
			cp.Title = nameHint
		}
		s.conversations[cp.ID] = &cp
		return cp.ID, nil
	case domain.KindFolder:
		// Copying a subtree into itself would never terminate.
		for _, ancestor := range s.ancestorChainLocked(targetFolderID) {
			if ancestor == id {
				return "", fmt.Errorf("cannot copy folder %q into itself or its own subtree", id)
			}
		}
		newID := s.copyFolderSubtreeLocked(id, targetFolderID, projectID, nameHint)
		return newID, nil
	default:
		return "", fmt.Errorf("unknown kind %q", kind)
	}
}

// copyFolderSubtreeLocked clones a folder and everything beneath it
func (s *Store) copyFolderSubtreeLocked(folderID, targetFolderID, projectID, nameHint string) string {
	src := s.folders[folderID]
	cp := *src
	cp.ID = uuid.NewString()
	cp.ParentFolderID = targetFolderID
	cp.ProjectID = projectID
	if nameHint != "" {
		cp.Name = nameHint
	}
	s.folders[cp.ID] = &cp

	// Snapshot child ids first: the maps are mutated while copying.
	var childFolders []string
	for id, f := range s.folders {
		if id != cp.ID && f.ParentFolderID == folderID {
			childFolders = append(childFolders, id)
		}
	}
	var childFiles []string
	for id, f := range s.files {
		if f.ParentFolderID == folderID {
			childFiles = append(childFiles, id)
		}
	}
	var childConvos []string
	for id, c := range s.conversations {
		if c.ParentFolderID == folderID {
			childConvos = append(childConvos, id)
		}
	}

	for _, id := range childFolders {
		s.copyFolderSubtreeLocked(id, cp.ID, projectID, "")
	}
	for _, id := range childFiles {
		f := *s.files[id]
		f.ID = uuid.NewString()
		f.ParentFolderID = cp.ID
		f.ProjectID = projectID
		s.files[f.ID] = &f
	}
	for _, id := range childConvos {
		c := *s.conversations[id]
		c.ID = uuid.NewString()
		c.ParentFolderID = cp.ID
		c.ProjectID = projectID
		s.conversations[c.ID] = &c
	}

	return cp.ID
}

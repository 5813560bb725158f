package workspace

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"trove/internal/domain"
	"trove/internal/eventbus"
)

// Store is the in-memory workspace: projects containing folders, files
// and conversations. It serves the UI as both the item provider (read
// side) and the mutation collaborator (move/duplicate/rename/delete).
type Store struct {
	mu            sync.RWMutex
	bus           eventbus.EventBus
	projects      map[string]*domain.Project
	folders       map[string]*domain.Folder
	files         map[string]*domain.File
	conversations map[string]*domain.Conversation
}

// NewStore creates an empty workspace store
func NewStore(bus eventbus.EventBus) *Store {
	return &Store{
		bus:           bus,
		projects:      make(map[string]*domain.Project),
		folders:       make(map[string]*domain.Folder),
		files:         make(map[string]*domain.File),
		conversations: make(map[string]*domain.Conversation),
	}
}

// AddProject registers a project
func (s *Store) AddProject(p domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.projects[p.ID] = &cp
}

// AddFolder registers a folder
func (s *Store) AddFolder(f domain.Folder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := f
	s.folders[f.ID] = &cp
}

// AddFile registers a file
func (s *Store) AddFile(f domain.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := f
	s.files[f.ID] = &cp
}

// AddConversation registers a conversation
func (s *Store) AddConversation(c domain.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := c
	s.conversations[c.ID] = &cp
}

// Projects returns all projects sorted by name
func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Project returns a project by id
func (s *Store) Project(id string) (domain.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return domain.Project{}, false
	}
	return *p, true
}

// Folder returns a folder by id
func (s *Store) Folder(id string) (domain.Folder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.folders[id]
	if !ok {
		return domain.Folder{}, false
	}
	return *f, true
}

// Conversation returns a conversation by id
func (s *Store) Conversation(id string) (domain.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversations[id]
	if !ok {
		return domain.Conversation{}, false
	}
	return *c, true
}

// File returns a file by id
func (s *Store) File(id string) (domain.File, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.files[id]
	if !ok {
		return domain.File{}, false
	}
	return *f, true
}

// ItemsIn returns the entities visible in a container, folders first,
// then files, then conversations, each group sorted by name.
func (s *Store) ItemsIn(c domain.ContainerID) []domain.EntityRef {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.EntityRef
	var folders, files, convos []domain.EntityRef

	for _, f := range s.folders {
		if f.ProjectID == c.ProjectID && f.ParentFolderID == c.FolderID {
			folders = append(folders, domain.EntityRef{
				ID: f.ID, Kind: domain.KindFolder, Name: f.Name,
				ParentFolderID: f.ParentFolderID, ProjectID: f.ProjectID,
			})
		}
	}
	for _, f := range s.files {
		if f.ProjectID == c.ProjectID && f.ParentFolderID == c.FolderID {
			files = append(files, domain.EntityRef{
				ID: f.ID, Kind: domain.KindFile, Name: f.Name,
				ParentFolderID: f.ParentFolderID, ProjectID: f.ProjectID,
			})
		}
	}
	for _, cv := range s.conversations {
		if cv.ProjectID == c.ProjectID && cv.ParentFolderID == c.FolderID {
			convos = append(convos, domain.EntityRef{
				ID: cv.ID, Kind: domain.KindConversation, Name: cv.Title,
				ParentFolderID: cv.ParentFolderID, ProjectID: cv.ProjectID,
			})
		}
	}

	byName := func(refs []domain.EntityRef) {
		sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	}
	byName(folders)
	byName(files)
	byName(convos)

	out = append(out, folders...)
	out = append(out, files...)
	out = append(out, convos...)
	return out
}

// Entity returns the current ref for a (kind, id) pair
func (s *Store) Entity(key domain.Key) (domain.EntityRef, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entityLocked(key)
}

func (s *Store) entityLocked(key domain.Key) (domain.EntityRef, bool) {
	switch key.Kind {
	case domain.KindFile:
		if f, ok := s.files[key.ID]; ok {
			return domain.EntityRef{ID: f.ID, Kind: key.Kind, Name: f.Name,
				ParentFolderID: f.ParentFolderID, ProjectID: f.ProjectID}, true
		}
	case domain.KindFolder:
		if f, ok := s.folders[key.ID]; ok {
			return domain.EntityRef{ID: f.ID, Kind: key.Kind, Name: f.Name,
				ParentFolderID: f.ParentFolderID, ProjectID: f.ProjectID}, true
		}
	case domain.KindConversation:
		if c, ok := s.conversations[key.ID]; ok {
			return domain.EntityRef{ID: c.ID, Kind: key.Kind, Name: c.Title,
				ParentFolderID: c.ParentFolderID, ProjectID: c.ProjectID}, true
		}
	}
	return domain.EntityRef{}, false
}

// AncestorChain returns the folder id followed by every ancestor folder
// id up to the project root. Unknown ids yield a nil chain.
func (s *Store) AncestorChain(folderID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ancestorChainLocked(folderID)
}

func (s *Store) ancestorChainLocked(folderID string) []string {
	var chain []string
	seen := make(map[string]bool)
	id := folderID
	for id != "" && !seen[id] {
		f, ok := s.folders[id]
		if !ok {
			break
		}
		seen[id] = true
		chain = append(chain, id)
		id = f.ParentFolderID
	}
	return chain
}

// CreateFolder creates a folder in the given container
func (s *Store) CreateFolder(name string, c domain.ContainerID) (domain.Folder, error) {
	if name == "" {
		return domain.Folder{}, fmt.Errorf("folder name must not be empty")
	}

	s.mu.Lock()
	if _, ok := s.projects[c.ProjectID]; !ok {
		s.mu.Unlock()
		return domain.Folder{}, fmt.Errorf("project %q not found", c.ProjectID)
	}
	folder := domain.Folder{
		ID:             uuid.NewString(),
		Name:           name,
		ParentFolderID: c.FolderID,
		ProjectID:      c.ProjectID,
	}
	cp := folder
	s.folders[folder.ID] = &cp
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(domain.FolderCreatedEvent{Folder: folder})
	}
	return folder, nil
}

// Rename changes an entity's display name
func (s *Store) Rename(key domain.Key, name string) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}

	s.mu.Lock()
	switch key.Kind {
	case domain.KindFile:
		f, ok := s.files[key.ID]
		if !ok {
			s.mu.Unlock()
			return fmt.Errorf("file %q not found", key.ID)
		}
		f.Name = name
	case domain.KindFolder:
		f, ok := s.folders[key.ID]
		if !ok {
			s.mu.Unlock()
			return fmt.Errorf("folder %q not found", key.ID)
		}
		f.Name = name
	case domain.KindConversation:
		c, ok := s.conversations[key.ID]
		if !ok {
			s.mu.Unlock()
			return fmt.Errorf("conversation %q not found", key.ID)
		}
		c.Title = name
	default:
		s.mu.Unlock()
		return fmt.Errorf("unknown kind %q", key.Kind)
	}
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(domain.ItemRenamedEvent{Key: key, NewName: name})
	}
	return nil
}

// Delete removes entities from the workspace. Deleting a folder removes
// its entire subtree.
func (s *Store) Delete(ctx context.Context, keys []domain.Key) error {
	s.mu.Lock()
	for _, key := range keys {
		switch key.Kind {
		case domain.KindFile:
			delete(s.files, key.ID)
		case domain.KindConversation:
			delete(s.conversations, key.ID)
		case domain.KindFolder:
			s.deleteFolderLocked(key.ID)
		}
	}
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(domain.ItemsDeletedEvent{Keys: keys})
	}
	return nil
}

func (s *Store) deleteFolderLocked(folderID string) {
	for id, f := range s.folders {
		if f.ParentFolderID == folderID {
			s.deleteFolderLocked(id)
		}
	}
	for id, f := range s.files {
		if f.ParentFolderID == folderID {
			delete(s.files, id)
		}
	}
	for id, c := range s.conversations {
		if c.ParentFolderID == folderID {
			delete(s.conversations, id)
		}
	}
	delete(s.folders, folderID)
}

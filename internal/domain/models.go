package domain

// Kind identifies the type of a workspace entity
type Kind string

const (
	KindFile         Kind = "file"
	KindFolder       Kind = "folder"
	KindConversation Kind = "conversation"
)

// Kinds lists every entity kind in display order
var Kinds = []Kind{KindFolder, KindFile, KindConversation}

// Label returns the human label for n items of this kind
func (k Kind) Label(n int) string {
	var base string
	switch k {
	case KindFile:
		base = "file"
	case KindFolder:
		base = "folder"
	case KindConversation:
		base = "conversation"
	default:
		base = "item"
	}
	if n == 1 {
		return base
	}
	return base + "s"
}

// Key is the identity of an entity. Ids are only unique per kind,
// so every lookup is scoped by the (kind, id) pair.
type Key struct {
	Kind Kind
	ID   string
}

// EntityRef is a reference to a workspace entity as seen by the UI
type EntityRef struct {
	ID             string
	Kind           Kind
	Name           string
	ParentFolderID string // "" means the project root
	ProjectID      string
}

// Key returns the entity's identity
func (r EntityRef) Key() Key {
	return Key{Kind: r.Kind, ID: r.ID}
}

// Project is a top-level workspace container
type Project struct {
	ID   string
	Name string
}

// Folder is a nestable container inside a project
type Folder struct {
	ID             string
	Name           string
	ParentFolderID string // "" means the project root
	ProjectID      string
}

// File is a document stored inside a project
type File struct {
	ID             string
	Name           string
	ParentFolderID string
	ProjectID      string
	Content        string
}

// Conversation is a recorded assistant chat inside a project
type Conversation struct {
	ID             string
	Title          string
	ParentFolderID string
	ProjectID      string
	Transcript     string
}

// ContainerID identifies the currently displayed container: a project
// root when FolderID is empty, otherwise a folder within the project.
type ContainerID struct {
	ProjectID string
	FolderID  string
}

// IsRoot reports whether the container is a project root
func (c ContainerID) IsRoot() bool {
	return c.FolderID == ""
}

// Point is a position in container-local, scroll-adjusted coordinates
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned bounding box in container-local coordinates
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectFromPoints returns the normalized rectangle spanned by two corners
func RectFromPoints(a, b Point) Rect {
	x1, x2 := a.X, b.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := a.Y, b.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1 + 1, Height: y2 - y1 + 1}
}

// Intersects reports whether two rectangles overlap. Two rects overlap
// unless one lies entirely left of, right of, above, or below the other.
func (r Rect) Intersects(o Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || o.Width <= 0 || o.Height <= 0 {
		return false
	}
	if r.X+r.Width <= o.X || o.X+o.Width <= r.X {
		return false
	}
	if r.Y+r.Height <= o.Y || o.Y+o.Height <= r.Y {
		return false
	}
	return true
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// DragSubject is the typed payload of a drag session. Exactly one kind
// is in flight per session; mixed-kind drags do not occur.
type DragSubject interface {
	SubjectKind() Kind
	SubjectID() string
	dragSubject()
}

// FileSubject marks a drag of files
type FileSubject struct{ ID string }

// FolderSubject marks a drag of folders
type FolderSubject struct{ ID string }

// ConversationSubject marks a drag of conversations
type ConversationSubject struct{ ID string }

func (s FileSubject) SubjectKind() Kind { return KindFile }
func (s FileSubject) SubjectID() string { return s.ID }
func (s FileSubject) dragSubject()      {}

func (s FolderSubject) SubjectKind() Kind { return KindFolder }
func (s FolderSubject) SubjectID() string { return s.ID }
func (s FolderSubject) dragSubject()      {}

func (s ConversationSubject) SubjectKind() Kind { return KindConversation }
func (s ConversationSubject) SubjectID() string { return s.ID }
func (s ConversationSubject) dragSubject()      {}

// SubjectFor builds the drag subject for a grabbed item
func SubjectFor(kind Kind, id string) DragSubject {
	switch kind {
	case KindFile:
		return FileSubject{ID: id}
	case KindFolder:
		return FolderSubject{ID: id}
	case KindConversation:
		return ConversationSubject{ID: id}
	}
	return nil
}

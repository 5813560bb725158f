package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged  EventType = "SelectionChanged"
	EventSelectionCleared  EventType = "SelectionCleared"
	EventContainerChanged  EventType = "ContainerChanged"
	EventItemsMoved        EventType = "ItemsMoved"
	EventItemDuplicated    EventType = "ItemDuplicated"
	EventBatchCompleted    EventType = "BatchCompleted"
	EventClipboardStaged   EventType = "ClipboardStaged"
	EventClipboardConsumed EventType = "ClipboardConsumed"
	EventFolderCreated     EventType = "FolderCreated"
	EventItemRenamed       EventType = "ItemRenamed"
	EventItemsDeleted      EventType = "ItemsDeleted"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when the active selection changes
type SelectionChangedEvent struct {
	Added   []Key
	Removed []Key
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the selection is emptied
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// ContainerChangedEvent is emitted when the user navigates to another container
type ContainerChangedEvent struct {
	Container ContainerID
}

func (e ContainerChangedEvent) Type() EventType { return EventContainerChanged }

// ItemsMovedEvent is emitted after items are reparented
type ItemsMovedEvent struct {
	Kind            Kind
	IDs             []string
	TargetFolderID  string
	TargetProjectID string
}

func (e ItemsMovedEvent) Type() EventType { return EventItemsMoved }

// ItemDuplicatedEvent is emitted after an item is duplicated
type ItemDuplicatedEvent struct {
	Kind     Kind
	SourceID string
	NewID    string
}

func (e ItemDuplicatedEvent) Type() EventType { return EventItemDuplicated }

// BatchCompletedEvent is emitted exactly once per multi-item user action
type BatchCompletedEvent struct {
	Action    string // "move", "paste-move", "paste-duplicate"
	Kind      Kind
	Succeeded int
	Failed    int
}

func (e BatchCompletedEvent) Type() EventType { return EventBatchCompleted }

// ClipboardStagedEvent is emitted when a cut/copy payload is staged
type ClipboardStagedEvent struct {
	Kind  Kind
	Cut   bool
	Count int
}

func (e ClipboardStagedEvent) Type() EventType { return EventClipboardStaged }

// ClipboardConsumedEvent is emitted when a slot is emptied by paste
type ClipboardConsumedEvent struct {
	Kind Kind
}

func (e ClipboardConsumedEvent) Type() EventType { return EventClipboardConsumed }

// FolderCreatedEvent is emitted when a new folder is created
type FolderCreatedEvent struct {
	Folder Folder
}

func (e FolderCreatedEvent) Type() EventType { return EventFolderCreated }

// ItemRenamedEvent is emitted when an entity is renamed
type ItemRenamedEvent struct {
	Key     Key
	NewName string
}

func (e ItemRenamedEvent) Type() EventType { return EventItemRenamed }

// ItemsDeletedEvent is emitted when entities are removed from the workspace
type ItemsDeletedEvent struct {
	Keys []Key
}

func (e ItemsDeletedEvent) Type() EventType { return EventItemsDeleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

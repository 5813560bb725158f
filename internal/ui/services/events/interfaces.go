package events

import "trove/internal/domain"

// EventBus is the narrow publishing interface the UI services depend
// on. The application wires the real bus in; tests use NullBus or a
// recording stub.
type EventBus interface {
	Publish(event domain.DomainEvent)
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event domain.DomainEvent) {}

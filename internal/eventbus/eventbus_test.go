package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trove/internal/domain"
)

// waitFor polls until cond holds or the deadline passes. Dispatch is
// asynchronous, so assertions on delivered events need a grace period.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.True(t, cond(), "condition not met before deadline")
}

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	var got []DomainEvent
	b.Subscribe(EventItemsMoved, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	})

	b.Publish(domain.ItemsMovedEvent{Kind: domain.KindFile, IDs: []string{"f1"}})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	})

	mu.Lock()
	defer mu.Unlock()
	moved, ok := got[0].(domain.ItemsMovedEvent)
	require.True(t, ok)
	require.Equal(t, []string{"f1"}, moved.IDs)
}

func TestSubscriberOnlySeesItsType(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	count := 0
	b.Subscribe(EventSelectionCleared, func(DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		count++
	})

	b.Publish(domain.ItemsMovedEvent{Kind: domain.KindFile})
	b.Publish(domain.SelectionClearedEvent{})
	b.Publish(domain.BatchCompletedEvent{Action: "move"})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count == 1
	})
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	first, second := 0, 0
	unsub := b.Subscribe(EventItemsDeleted, func(DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		first++
	})
	b.Subscribe(EventItemsDeleted, func(DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		second++
	})

	b.Publish(domain.ItemsDeletedEvent{})
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return first == 1 && second == 1
	})

	unsub()
	b.Publish(domain.ItemsDeletedEvent{})
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return second == 2
	})

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, first, "an unsubscribed handler must not be called again")
}

func TestPanickingHandlerDoesNotKillDispatch(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	delivered := 0
	b.Subscribe(EventError, func(DomainEvent) {
		panic("handler bug")
	})
	b.Subscribe(EventError, func(DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		delivered++
	})

	b.Publish(domain.ErrorEvent{Message: "x"})
	b.Publish(domain.ErrorEvent{Message: "y"})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return delivered == 2
	})
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New()
	b.Close()
	b.Close()
}

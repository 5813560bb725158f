package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunReportsEveryItem(t *testing.T) {
	t.Parallel()

	ids := []string{"a", "b", "c", "d", "e"}
	report := Run(context.Background(), ids, 3, func(ctx context.Context, id string) error {
		if id == "c" {
			return errors.New("boom")
		}
		return nil
	})

	require.Len(t, report.Results, 5, "every item should have a result")
	require.Equal(t, 4, report.Succeeded)
	require.Equal(t, 1, report.Failed)
	require.Equal(t, []string{"c"}, report.FailedIDs())
	require.True(t, report.Partial())

	// Results keep the dispatch order regardless of completion order.
	for i, res := range report.Results {
		require.Equal(t, ids[i], res.ID)
	}
}

func TestRunDoesNotAbortOnFailure(t *testing.T) {
	t.Parallel()

	var calls int32
	ids := []string{"1", "2", "3", "4"}
	report := Run(context.Background(), ids, 1, func(ctx context.Context, id string) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("always fails")
	})

	require.Equal(t, int32(4), calls, "a failure must not stop the remaining items")
	require.Equal(t, 0, report.Succeeded)
	require.Equal(t, 4, report.Failed)
	require.False(t, report.Partial(), "all-failed is not a partial outcome")
}

func TestRunRespectsConcurrencyLimit(t *testing.T) {
	t.Parallel()

	const limit = 3
	var mu sync.Mutex
	inFlight, peak := 0, 0

	ids := make([]string, 20)
	for i := range ids {
		ids[i] = fmt.Sprintf("item-%d", i)
	}

	Run(context.Background(), ids, limit, func(ctx context.Context, id string) error {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		time.Sleep(time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return nil
	})

	require.LessOrEqual(t, peak, limit, "no more than %d items may run at once", limit)
}

func TestRunEmptyInput(t *testing.T) {
	t.Parallel()

	report := Run(context.Background(), nil, 3, func(ctx context.Context, id string) error {
		t.Fatal("fn must not be called for an empty batch")
		return nil
	})
	require.Empty(t, report.Results)
	require.Zero(t, report.Succeeded)
	require.Zero(t, report.Failed)
}

func TestRunSingleItemStillGoesThroughDispatcher(t *testing.T) {
	t.Parallel()

	report := Run(context.Background(), []string{"only"}, 3, func(ctx context.Context, id string) error {
		return nil
	})
	require.Equal(t, 1, report.Succeeded)
	require.Len(t, report.Results, 1)
}

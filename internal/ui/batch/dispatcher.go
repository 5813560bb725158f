// Package batch dispatches per-item mutation calls with a bounded
// number in flight and aggregates their outcomes. One policy for every
// entity kind: drags and pastes go through the same pool.
package batch

import (
	"context"
	"sync"
)

// DefaultLimit is the number of mutation calls allowed in flight at
// once for a single user action.
const DefaultLimit = 3

// Result records one item's outcome
type Result struct {
	ID  string
	Err error
}

// Report aggregates a whole batch. Every item is attempted; a batch is
// never aborted early, so Succeeded+Failed always equals the number of
// dispatched items.
type Report struct {
	Results   []Result
	Succeeded int
	Failed    int
}

// Partial reports whether some items succeeded and some failed
func (r Report) Partial() bool {
	return r.Succeeded > 0 && r.Failed > 0
}

// FailedIDs returns the ids whose calls failed
func (r Report) FailedIDs() []string {
	var ids []string
	for _, res := range r.Results {
		if res.Err != nil {
			ids = append(ids, res.ID)
		}
	}
	return ids
}

// Run calls fn once per id with at most limit calls in flight and
// waits for all of them to settle. Results keep the order of ids. A
// slow member never blocks another item's outcome from being
// recorded; the aggregate is returned once every call has settled.
func Run(ctx context.Context, ids []string, limit int, fn func(ctx context.Context, id string) error) Report {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]Result, len(ids))
	workerPool := make(chan struct{}, limit) // semaphore for in-flight calls
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			workerPool <- struct{}{}
			defer func() { <-workerPool }()
			results[i] = Result{ID: id, Err: fn(ctx, id)}
		}(i, id)
	}
	wg.Wait()

	report := Report{Results: results}
	for _, res := range results {
		if res.Err != nil {
			report.Failed++
		} else {
			report.Succeeded++
		}
	}
	return report
}

package oral

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
)

// BatchItem names one scenario in a sweep, for labeling its result.
type BatchItem struct {
	Name   string
	Policy core.Policy
}

// BatchResult pairs a BatchItem's name with its run outcome.
type BatchResult struct {
	Name    string
	Reports []Report
	Err     error
}

// Batch runs an independent set of whole scenarios concurrently, one
// goroutine per item, and collects each one's outcome once every
// goroutine has finished. Each item's Simulation.Run is still entirely
// synchronous internally; the concurrency here is across independent
// scenarios, not inside any one simulation's round loop.
func Batch(ctx context.Context, items []BatchItem, logger *slog.Logger) []BatchResult {
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]BatchResult, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item BatchItem) {
			defer wg.Done()
			sim, err := New(item.Policy, logger)
			if err != nil {
				results[i] = BatchResult{Name: item.Name, Err: err}
				return
			}
			if err := sim.Run(ctx); err != nil {
				results[i] = BatchResult{Name: item.Name, Err: err}
				return
			}
			results[i] = BatchResult{Name: item.Name, Reports: sim.Reports()}
		}(i, item)
	}
	wg.Wait()
	return results
}

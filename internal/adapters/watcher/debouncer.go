// Package watcher implements file system watching for re-running checks on change.
package watcher

import (
	"context"
	"slices"
	"time"
	"unique"
)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

// Debounce reads changed paths from in and sends them to out as sorted batches
// of distinct paths, once no new path has arrived for window.
//
// It returns when ctx is done or in is closed. A batch still pending when in
// closes is sent before returning; one pending when ctx is done is dropped.
func Debounce(ctx context.Context, window time.Duration, in <-chan string, out chan<- []string) {
	pending := make(map[unique.Handle[string]]struct{})
	timer := time.NewTimer(window)
	timer.Stop()
	defer timer.Stop()

	var expired <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-in:
			if !ok {
				send(ctx, out, drain(pending))
				return
			}
			pending[unique.Make(path)] = struct{}{}
			timer.Reset(window)
			expired = timer.C
		case <-expired:
			expired = nil
			send(ctx, out, drain(pending))
		}
	}
}

func send(ctx context.Context, out chan<- []string, batch []string) {
	if len(batch) == 0 {
		return
	}
	select {
	case out <- batch:
	case <-ctx.Done():
	}
}

// drain empties pending and returns its paths in sorted order.
func drain(pending map[unique.Handle[string]]struct{}) []string {
	if len(pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(pending))
	for handle := range pending {
		paths = append(paths, handle.Value())
		delete(pending, handle)
	}
	slices.Sort(paths)
	return paths
}

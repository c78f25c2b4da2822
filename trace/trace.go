// Package trace implements the "site_tag" debug channel spec.md §7 calls
// out as the core's only user-visible diagnostic: guard_budget logs which
// call site triggered compaction, and nothing else in the core emits
// diagnostics. Grounded on prof/profile.go's mutex-protected Entry slice
// and SnapshotAndReset pair, generalized from timing entries to
// compaction events.
package trace

import "sync"

// Event records one guard_budget compaction trigger.
type Event struct {
	SiteTag    string
	EdgeCount  int
	EdgeBudget int
}

var (
	mu     sync.Mutex
	record []Event
)

// Record appends a compaction event to the in-process trace buffer.
func Record(siteTag string, edgeCount, edgeBudget int) {
	mu.Lock()
	record = append(record, Event{SiteTag: siteTag, EdgeCount: edgeCount, EdgeBudget: edgeBudget})
	mu.Unlock()
}

// SnapshotAndReset returns the collected events and clears the buffer, the
// same drain-on-read contract prof.SnapshotAndReset uses.
func SnapshotAndReset() []Event {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Event, len(record))
	copy(out, record)
	record = nil
	return out
}

// Package timer holds the single in-process session timer and the
// per-label aggregation over persisted sessions.
package timer

import (
	"strings"
	"sync"
	"time"

	"github.com/sadopc/dailies/internal/apperr"
	"github.com/sadopc/dailies/internal/store"
)

// Tracker runs at most one session at a time: Idle -> Running -> Idle.
// Only stopping a session writes to the store; a running session lives
// entirely in memory.
type Tracker struct {
	mu sync.Mutex

	store     *store.Store
	running   bool
	label     string
	startedAt time.Time

	now func() time.Time
}

func New(s *store.Store) *Tracker {
	return &Tracker{store: s, now: time.Now}
}

// Start begins a session for the given label. Starting while a session is
// already running is a no-op; the running session keeps its label.
func (t *Tracker) Start(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return apperr.Validation("taskLabel", "must not be empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return nil
	}
	t.running = true
	t.label = label
	t.startedAt = t.now()
	return nil
}

// Stop ends the running session, persists it as a TimeEntry with whole
// elapsed seconds, and returns to Idle. Stopping while Idle is a no-op and
// returns nil. On a store failure the session stays running so the caller
// can retry.
func (t *Tracker) Stop() (*store.TimeEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return nil, nil
	}

	now := t.now()
	seconds := int64(now.Sub(t.startedAt) / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	entry, err := t.store.CreateEntry(t.label, seconds, now)
	if err != nil {
		return nil, err
	}

	t.running = false
	t.label = ""
	return entry, nil
}

// Elapsed returns the running session's current duration, zero when Idle.
// Pure read for display polling.
func (t *Tracker) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return 0
	}
	return t.now().Sub(t.startedAt)
}

// Running reports the timer state and the active label.
func (t *Tracker) Running() (bool, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running, t.label
}

// TotalSecondsByTask sums persisted sessions per label.
func (t *Tracker) TotalSecondsByTask() (map[string]int64, error) {
	totals, err := t.store.TotalsByTask()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(totals))
	for _, tt := range totals {
		out[tt.TaskName] = tt.TotalSeconds
	}
	return out, nil
}

// TopTotals returns per-label totals largest first, truncated to n when
// n > 0. The remainder beyond n stays in storage, it just is not reported.
func (t *Tracker) TopTotals(n int) ([]store.TaskTotal, error) {
	totals, err := t.store.TotalsByTask()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals, nil
}

// DeleteEntriesForTask removes every session recorded under exactly this
// label and reports how many were removed.
func (t *Tracker) DeleteEntriesForTask(label string) (int64, error) {
	return t.store.DeleteEntriesByTask(label)
}

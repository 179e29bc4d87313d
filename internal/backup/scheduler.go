package backup

import (
	"context"
	"log"
	"time"
)

// Scheduler runs periodic background backups. A tick that overlaps user
// mutations just snapshots whatever is committed at read time; the export
// takes no locks.
type Scheduler struct {
	manager  *Manager
	interval time.Duration

	logf func(format string, args ...any)
}

func NewScheduler(m *Manager, interval time.Duration) *Scheduler {
	return &Scheduler{manager: m, interval: interval, logf: log.Printf}
}

// Run blocks until ctx is cancelled, backing up every interval. A failed
// tick is logged and the schedule keeps going; cancellation stops the tick
// loop only, an in-flight upload runs to completion.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, name, err := s.manager.Backup(ctx); err != nil {
				s.logf("auto-backup failed: %v", err)
			} else {
				s.logf("auto-backup written: %s", name)
			}
		}
	}
}

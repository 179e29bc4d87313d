package store

import (
	"time"

	"github.com/sadopc/dailies/internal/apperr"
)

// InsertTasksBatch writes a group of fully-specified task rows in one
// transaction. Ids are preserved when set. A failure rolls back this batch
// only; earlier batches stay committed.
func (s *Store) InsertTasksBatch(tasks []Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return apperr.Store("begin task batch", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO tasks (id, title, type, status, start_date, end_date) VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return apperr.Store("prepare task batch", err)
	}
	defer stmt.Close()

	for i := range tasks {
		t := &tasks[i]
		var id any
		if t.ID > 0 {
			id = t.ID
		}
		if _, err := stmt.Exec(id, t.Title, string(t.Type), boolToInt(t.Status), t.StartDate, t.EndDate); err != nil {
			tx.Rollback()
			return apperr.Store("insert task batch", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return apperr.Store("commit task batch", err)
	}
	return nil
}

// InsertEntriesBatch writes a group of fully-specified time entry rows in
// one transaction.
func (s *Store) InsertEntriesBatch(entries []TimeEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return apperr.Store("begin entry batch", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO time_entries (id, task_name, seconds, timestamp) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return apperr.Store("prepare entry batch", err)
	}
	defer stmt.Close()

	for i := range entries {
		e := &entries[i]
		var id any
		if e.ID > 0 {
			id = e.ID
		}
		if _, err := stmt.Exec(id, e.TaskName, e.Seconds, e.Timestamp.UTC().Format(time.RFC3339)); err != nil {
			tx.Rollback()
			return apperr.Store("insert entry batch", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return apperr.Store("commit entry batch", err)
	}
	return nil
}

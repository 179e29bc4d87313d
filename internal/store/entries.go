package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/sadopc/dailies/internal/apperr"
)

func (s *Store) CreateEntry(taskName string, seconds int64, ts time.Time) (*TimeEntry, error) {
	res, err := s.db.Exec(
		`INSERT INTO time_entries (task_name, seconds, timestamp) VALUES (?, ?, ?)`,
		taskName, seconds, ts.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, apperr.Store("insert entry", err)
	}
	id, _ := res.LastInsertId()
	return s.GetEntry(id)
}

// InsertEntry writes a fully-specified entry row, preserving its id when
// one is set. Used by restore.
func (s *Store) InsertEntry(e *TimeEntry) (int64, error) {
	var id any
	if e.ID > 0 {
		id = e.ID
	}
	res, err := s.db.Exec(
		`INSERT INTO time_entries (id, task_name, seconds, timestamp) VALUES (?, ?, ?, ?)`,
		id, e.TaskName, e.Seconds, e.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, apperr.Store("insert entry", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetEntry(id int64) (*TimeEntry, error) {
	e := &TimeEntry{}
	var ts string
	err := s.db.QueryRow(
		`SELECT id, task_name, seconds, timestamp FROM time_entries WHERE id = ?`, id,
	).Scan(&e.ID, &e.TaskName, &e.Seconds, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("time entry", id)
	}
	if err != nil {
		return nil, apperr.Store("get entry", err)
	}
	e.Timestamp, _ = time.Parse(time.RFC3339, ts)
	return e, nil
}

func (s *Store) ListEntries() ([]TimeEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, task_name, seconds, timestamp FROM time_entries ORDER BY timestamp DESC, id DESC`,
	)
	if err != nil {
		return nil, apperr.Store("list entries", err)
	}
	defer rows.Close()

	var entries []TimeEntry
	for rows.Next() {
		var e TimeEntry
		var ts string
		if err := rows.Scan(&e.ID, &e.TaskName, &e.Seconds, &ts); err != nil {
			return nil, apperr.Store("scan entry", err)
		}
		e.Timestamp, _ = time.Parse(time.RFC3339, ts)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("list entries", err)
	}
	return entries, nil
}

func (s *Store) DeleteEntry(id int64) error {
	res, err := s.db.Exec(`DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return apperr.Store("delete entry", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("time entry", id)
	}
	return nil
}

// DeleteEntriesByTask removes every entry with exactly this label and
// reports how many were removed. Zero matches is not an error.
func (s *Store) DeleteEntriesByTask(taskName string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM time_entries WHERE task_name = ?`, taskName)
	if err != nil {
		return 0, apperr.Store("delete entries by task", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (s *Store) ClearEntries() error {
	if _, err := s.db.Exec(`DELETE FROM time_entries`); err != nil {
		return apperr.Store("clear entries", err)
	}
	return nil
}

// TotalsByTask aggregates tracked seconds per task label, largest first.
func (s *Store) TotalsByTask() ([]TaskTotal, error) {
	rows, err := s.db.Query(`
		SELECT task_name, COALESCE(SUM(seconds), 0), COUNT(*)
		FROM time_entries
		GROUP BY task_name
		ORDER BY SUM(seconds) DESC, task_name`,
	)
	if err != nil {
		return nil, apperr.Store("totals by task", err)
	}
	defer rows.Close()

	var totals []TaskTotal
	for rows.Next() {
		var t TaskTotal
		if err := rows.Scan(&t.TaskName, &t.TotalSeconds, &t.EntryCount); err != nil {
			return nil, apperr.Store("scan total", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("totals by task", err)
	}
	return totals, nil
}

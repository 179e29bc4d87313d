package store

import (
	"database/sql"
	"errors"

	"github.com/sadopc/dailies/internal/apperr"
)

func (s *Store) CreateTask(title string, typ TaskType, startDate string) (*Task, error) {
	res, err := s.db.Exec(
		`INSERT INTO tasks (title, type, status, start_date, end_date) VALUES (?, ?, 0, ?, NULL)`,
		title, string(typ), startDate,
	)
	if err != nil {
		return nil, apperr.Store("insert task", err)
	}
	id, _ := res.LastInsertId()
	return s.GetTask(id)
}

// InsertTask writes a fully-specified task row, preserving its id when one
// is set. Used by restore.
func (s *Store) InsertTask(t *Task) (int64, error) {
	var id any
	if t.ID > 0 {
		id = t.ID
	}
	res, err := s.db.Exec(
		`INSERT INTO tasks (id, title, type, status, start_date, end_date) VALUES (?, ?, ?, ?, ?, ?)`,
		id, t.Title, string(t.Type), boolToInt(t.Status), t.StartDate, t.EndDate,
	)
	if err != nil {
		return 0, apperr.Store("insert task", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetTask(id int64) (*Task, error) {
	t := &Task{}
	var status int
	var endDate sql.NullString
	var typ string

	err := s.db.QueryRow(
		`SELECT id, title, type, status, start_date, end_date FROM tasks WHERE id = ?`, id,
	).Scan(&t.ID, &t.Title, &typ, &status, &t.StartDate, &endDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("task", id)
	}
	if err != nil {
		return nil, apperr.Store("get task", err)
	}
	t.Type = TaskType(typ)
	t.Status = status == 1
	if endDate.Valid {
		t.EndDate = &endDate.String
	}
	return t, nil
}

func (s *Store) ListTasks() ([]Task, error) {
	return s.queryTasks(`SELECT id, title, type, status, start_date, end_date FROM tasks ORDER BY id`)
}

// ListTasksByStatus returns ongoing (false) or completed (true) tasks.
func (s *Store) ListTasksByStatus(completed bool) ([]Task, error) {
	return s.queryTasks(
		`SELECT id, title, type, status, start_date, end_date FROM tasks WHERE status = ? ORDER BY id`,
		boolToInt(completed),
	)
}

// ListCompleted returns completed tasks newest-completion first. A limit of
// 0 or less returns everything.
func (s *Store) ListCompleted(limit int) ([]Task, error) {
	query := `SELECT id, title, type, status, start_date, end_date FROM tasks
	          WHERE status = 1 ORDER BY end_date DESC, id DESC`
	if limit > 0 {
		return s.queryTasks(query+` LIMIT ?`, limit)
	}
	return s.queryTasks(query)
}

func (s *Store) queryTasks(query string, args ...any) ([]Task, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, apperr.Store("list tasks", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		var status int
		var endDate sql.NullString
		var typ string
		if err := rows.Scan(&t.ID, &t.Title, &typ, &status, &t.StartDate, &endDate); err != nil {
			return nil, apperr.Store("scan task", err)
		}
		t.Type = TaskType(typ)
		t.Status = status == 1
		if endDate.Valid {
			t.EndDate = &endDate.String
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("list tasks", err)
	}
	return tasks, nil
}

func (s *Store) UpdateTask(t *Task) error {
	res, err := s.db.Exec(
		`UPDATE tasks SET title = ?, type = ?, status = ?, start_date = ?, end_date = ? WHERE id = ?`,
		t.Title, string(t.Type), boolToInt(t.Status), t.StartDate, t.EndDate, t.ID,
	)
	if err != nil {
		return apperr.Store("update task", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("task", t.ID)
	}
	return nil
}

func (s *Store) DeleteTask(id int64) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return apperr.Store("delete task", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("task", id)
	}
	return nil
}

func (s *Store) ClearTasks() error {
	if _, err := s.db.Exec(`DELETE FROM tasks`); err != nil {
		return apperr.Store("clear tasks", err)
	}
	return nil
}

// CountTasksCompletedOn counts tasks whose completion date equals date.
// The streak and series queries lean on this equality count.
func (s *Store) CountTasksCompletedOn(date string) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM tasks WHERE status = 1 AND end_date = ?`, date,
	).Scan(&n)
	if err != nil {
		return 0, apperr.Store("count completed", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

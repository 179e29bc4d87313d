package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/sadopc/dailies/internal/apperr"
)

// Schema history: v1 tasks, v2 time entries, v3 settings. Migrations are
// additive; opening an older database upgrades it forward without touching
// existing rows.
const currentVersion = 3

type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, apperr.Store("create db directory", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperr.Store("open database", err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, apperr.Store(fmt.Sprintf("exec pragma %q", p), err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, apperr.Store("migrate", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	steps := []func() error{s.migrateV1, s.migrateV2, s.migrateV3}
	for v := version; v < currentVersion; v++ {
		if err := steps[v](); err != nil {
			return fmt.Errorf("migrate to v%d: %w", v+1, err)
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		type        TEXT NOT NULL,
		status      INTEGER NOT NULL DEFAULT 0,
		start_date  TEXT NOT NULL,
		end_date    TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_status   ON tasks(status);
	CREATE INDEX IF NOT EXISTS idx_tasks_type     ON tasks(type);
	CREATE INDEX IF NOT EXISTS idx_tasks_end_date ON tasks(end_date);
	`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *Store) migrateV2() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS time_entries (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		task_name  TEXT NOT NULL,
		seconds    INTEGER NOT NULL DEFAULT 0,
		timestamp  TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_task_name ON time_entries(task_name);
	CREATE INDEX IF NOT EXISTS idx_entries_timestamp ON time_entries(timestamp);
	`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *Store) migrateV3() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// DefaultDBPath returns ~/.config/dailies/dailies.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "dailies", "dailies.db"), nil
}

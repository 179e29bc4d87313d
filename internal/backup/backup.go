// Package backup serializes the whole local store to a portable document,
// restores it with full-replace semantics, and mirrors backups to a cloud
// file store with bounded retention.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sadopc/dailies/internal/store"
)

// batchSize groups restore inserts into transactions. Performance detail,
// not a correctness boundary.
const batchSize = 100

type Engine struct {
	store *store.Store

	now func() time.Time
}

func NewEngine(s *store.Store) *Engine {
	return &Engine{store: s, now: time.Now}
}

// ExportAll snapshots both collections. If either read fails the whole
// export fails; a partial document is never returned.
func (e *Engine) ExportAll() (*Document, error) {
	tasks, err := e.store.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("export tasks: %w", err)
	}
	entries, err := e.store.ListEntries()
	if err != nil {
		return nil, fmt.Errorf("export time entries: %w", err)
	}

	doc := &Document{
		Version:      DocumentVersion,
		ExportDate:   e.now().UTC().Format(time.RFC3339),
		Tasks:        make([]TaskRecord, 0, len(tasks)),
		TimeTracking: make([]EntryRecord, 0, len(entries)),
	}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, taskRecord(t))
	}
	for _, en := range entries {
		doc.TimeTracking = append(doc.TimeTracking, entryRecord(en))
	}
	return doc, nil
}

// ExportJSON renders the snapshot pretty-printed, the way backups are
// stored and hand-inspected.
func (e *Engine) ExportJSON() ([]byte, error) {
	doc, err := e.ExportAll()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return data, nil
}

// ImportAll replaces the dataset with the document's contents. Validation
// runs fully before any mutation; a validation failure leaves the store
// untouched. After clearing, records are inserted in batches — a batch
// failure aborts the import and is reported, and the store may then hold a
// partial dataset.
func (e *Engine) ImportAll(doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if err := e.store.ClearTasks(); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	if err := e.store.ClearEntries(); err != nil {
		return fmt.Errorf("clear time entries: %w", err)
	}

	tasks := make([]store.Task, 0, len(doc.Tasks))
	for _, r := range doc.Tasks {
		tasks = append(tasks, r.task())
	}
	for start := 0; start < len(tasks); start += batchSize {
		end := min(start+batchSize, len(tasks))
		if err := e.store.InsertTasksBatch(tasks[start:end]); err != nil {
			return fmt.Errorf("import tasks %d-%d (store may hold a partial dataset): %w", start, end-1, err)
		}
	}

	entries := make([]store.TimeEntry, 0, len(doc.TimeTracking))
	for _, r := range doc.TimeTracking {
		entries = append(entries, r.entry())
	}
	for start := 0; start < len(entries); start += batchSize {
		end := min(start+batchSize, len(entries))
		if err := e.store.InsertEntriesBatch(entries[start:end]); err != nil {
			return fmt.Errorf("import time entries %d-%d (store may hold a partial dataset): %w", start, end-1, err)
		}
	}
	return nil
}

// Reset clears every collection.
func (e *Engine) Reset() error {
	if err := e.store.ClearTasks(); err != nil {
		return err
	}
	return e.store.ClearEntries()
}

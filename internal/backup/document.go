package backup

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sadopc/dailies/internal/apperr"
	"github.com/sadopc/dailies/internal/store"
)

// DocumentVersion identifies the portable backup format.
const DocumentVersion = "1.0"

// Document is the portable snapshot of the whole dataset.
type Document struct {
	Version      string        `json:"version"`
	ExportDate   string        `json:"exportDate"`
	Tasks        []TaskRecord  `json:"tasks"`
	TimeTracking []EntryRecord `json:"timeTracking"`
}

type TaskRecord struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	Status    bool    `json:"status"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

type EntryRecord struct {
	ID        int64  `json:"id"`
	TaskName  string `json:"taskName"`
	Seconds   int64  `json:"seconds"`
	Timestamp string `json:"timestamp"`
}

// ParseDocument decodes backup bytes. Shape problems come back as
// validation errors so callers can report them like any other bad input.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperr.Validation("document", fmt.Sprintf("not valid JSON: %v", err))
	}
	return &doc, nil
}

// Validate checks the document shape and every record before any of it is
// allowed near the store.
func (d *Document) Validate() error {
	if d == nil {
		return apperr.Validation("document", "missing")
	}
	if d.Version == "" {
		return apperr.Validation("version", "missing")
	}
	if d.Tasks == nil {
		return apperr.Validation("tasks", "missing array")
	}
	if d.TimeTracking == nil {
		return apperr.Validation("timeTracking", "missing array")
	}

	for i, t := range d.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			return apperr.Validation(fmt.Sprintf("tasks[%d].title", i), "must not be empty")
		}
		if !store.TaskType(t.Type).Valid() {
			return apperr.Validation(fmt.Sprintf("tasks[%d].type", i),
				fmt.Sprintf("unknown type %q", t.Type))
		}
		// endDate is present exactly when the task is completed.
		if t.Status && t.EndDate == nil {
			return apperr.Validation(fmt.Sprintf("tasks[%d].endDate", i),
				"completed task must carry an end date")
		}
		if !t.Status && t.EndDate != nil {
			return apperr.Validation(fmt.Sprintf("tasks[%d].endDate", i),
				"ongoing task must not carry an end date")
		}
	}
	for i, e := range d.TimeTracking {
		if strings.TrimSpace(e.TaskName) == "" {
			return apperr.Validation(fmt.Sprintf("timeTracking[%d].taskName", i), "must not be empty")
		}
		if e.Seconds < 0 {
			return apperr.Validation(fmt.Sprintf("timeTracking[%d].seconds", i), "must not be negative")
		}
		if _, err := time.Parse(time.RFC3339, e.Timestamp); err != nil {
			return apperr.Validation(fmt.Sprintf("timeTracking[%d].timestamp", i),
				fmt.Sprintf("not an RFC3339 instant: %q", e.Timestamp))
		}
	}
	return nil
}

func taskRecord(t store.Task) TaskRecord {
	return TaskRecord{
		ID:        t.ID,
		Title:     t.Title,
		Type:      string(t.Type),
		Status:    t.Status,
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
	}
}

func entryRecord(e store.TimeEntry) EntryRecord {
	return EntryRecord{
		ID:        e.ID,
		TaskName:  e.TaskName,
		Seconds:   e.Seconds,
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
	}
}

func (t TaskRecord) task() store.Task {
	return store.Task{
		ID:        t.ID,
		Title:     strings.TrimSpace(t.Title),
		Type:      store.TaskType(t.Type),
		Status:    t.Status,
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
	}
}

func (e EntryRecord) entry() store.TimeEntry {
	ts, _ := time.Parse(time.RFC3339, e.Timestamp)
	return store.TimeEntry{
		ID:        e.ID,
		TaskName:  e.TaskName,
		Seconds:   e.Seconds,
		Timestamp: ts,
	}
}

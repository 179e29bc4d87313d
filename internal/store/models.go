package store

import "time"

// TaskType distinguishes one-off goals from recurring non-negotiables.
type TaskType string

const (
	TypeGoal          TaskType = "Goal"
	TypeNonNegotiable TaskType = "Non-Negotiable"
)

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	return t == TypeGoal || t == TypeNonNegotiable
}

type Task struct {
	ID        int64
	Title     string
	Type      TaskType
	Status    bool // false = ongoing, true = completed
	StartDate string
	EndDate   *string // set iff Status is true
}

type TimeEntry struct {
	ID        int64
	TaskName  string // soft link to Task.Title, allowed to drift
	Seconds   int64
	Timestamp time.Time // when the session ended
}

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// TaskTotal is the aggregated tracked time for one task label.
type TaskTotal struct {
	TaskName     string
	TotalSeconds int64
	EntryCount   int
}

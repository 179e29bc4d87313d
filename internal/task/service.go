// Package task implements the task lifecycle: a task is created ongoing,
// may be completed exactly once per row, and completing a Non-Negotiable
// spawns tomorrow's instance of the same habit.
package task

import (
	"fmt"
	"strings"

	"github.com/sadopc/dailies/internal/apperr"
	"github.com/sadopc/dailies/internal/dates"
	"github.com/sadopc/dailies/internal/store"
)

type Service struct {
	store *store.Store

	// today is swappable in tests; everything in the engine must agree
	// on the same local calendar date.
	today func() string
}

func New(s *store.Store) *Service {
	return &Service{store: s, today: dates.Today}
}

// Add creates an ongoing task starting today.
func (s *Service) Add(title string, typ store.TaskType) (*store.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Validation("title", "must not be empty")
	}
	if !typ.Valid() {
		return nil, apperr.Validation("type", fmt.Sprintf("must be %q or %q", store.TypeGoal, store.TypeNonNegotiable))
	}
	return s.store.CreateTask(title, typ, s.today())
}

// Complete marks the task done today. For Non-Negotiable tasks it also
// creates tomorrow's instance; a failed successor insert is surfaced
// because silently dropping it breaks the recurring-habit guarantee.
func (s *Service) Complete(id int64) (*store.Task, error) {
	t, err := s.store.GetTask(id)
	if err != nil {
		return nil, err
	}

	today := s.today()
	t.Status = true
	t.EndDate = &today
	if err := s.store.UpdateTask(t); err != nil {
		return nil, err
	}

	if t.Type == store.TypeNonNegotiable {
		tomorrow, err := dates.Add(today, 1)
		if err != nil {
			return nil, fmt.Errorf("compute successor date: %w", err)
		}
		if _, err := s.store.CreateTask(t.Title, t.Type, tomorrow); err != nil {
			return nil, fmt.Errorf("create successor task: %w", err)
		}
	}
	return t, nil
}

// Delete hard-removes the task. Historical time entries under the same
// label are untouched.
func (s *Service) Delete(id int64) error {
	return s.store.DeleteTask(id)
}

// Ongoing lists tasks not yet completed.
func (s *Service) Ongoing() ([]store.Task, error) {
	return s.store.ListTasksByStatus(false)
}

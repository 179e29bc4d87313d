// Package stats computes the derived read-side views: today's completion
// count, the consecutive-day streak, rolling completion series and recent
// completions. Everything is recomputed from the store on each call;
// collections are personal-scale, so correctness wins over caching.
package stats

import (
	"strconv"

	"github.com/sadopc/dailies/internal/apperr"
	"github.com/sadopc/dailies/internal/dates"
	"github.com/sadopc/dailies/internal/store"
)

// SettingExpectedPerDay is the settings key for the expected completions
// per day used by the rolling series.
const SettingExpectedPerDay = "expected_per_day"

// maxStreakDays caps the backward walk. Safety bound against corrupted or
// absurdly old end dates, not a business rule.
const maxStreakDays = 36500

type Service struct {
	store *store.Store

	today func() string
}

func New(s *store.Store) *Service {
	return &Service{store: s, today: dates.Today}
}

// CompletedCountOn counts tasks completed on the given calendar date.
func (s *Service) CompletedCountOn(date string) (int, error) {
	return s.store.CountTasksCompletedOn(date)
}

// CompletedToday counts tasks completed today.
func (s *Service) CompletedToday() (int, error) {
	return s.store.CountTasksCompletedOn(s.today())
}

// CurrentStreak walks backward from today one calendar day at a time and
// counts days with at least one completion. Today with no completions is a
// streak of 0.
func (s *Service) CurrentStreak() (int, error) {
	day := s.today()
	streak := 0
	for range maxStreakDays {
		n, err := s.store.CountTasksCompletedOn(day)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			break
		}
		streak++
		day, err = dates.Add(day, -1)
		if err != nil {
			return 0, err
		}
	}
	return streak, nil
}

// Series is a date-indexed window of per-day completion aggregates ending
// today, oldest first.
type Series struct {
	Dates    []string
	Counts   []int // completions per day
	Actual   []int // cumulative completions
	Expected []int // expectedPerDay * (index+1)
}

// RollingSeries builds the last windowDays calendar days ending today.
// Days with no history count zero.
func (s *Service) RollingSeries(windowDays int) (*Series, error) {
	if windowDays < 1 {
		return nil, apperr.Validation("windowDays", "must be at least 1")
	}
	expected := s.expectedPerDay()

	today := s.today()
	days := make([]string, 0, windowDays)
	day := today
	for i := 0; i < windowDays; i++ {
		days = append(days, day)
		var err error
		day, err = dates.Add(day, -1)
		if err != nil {
			return nil, err
		}
	}
	// Walked newest to oldest; the series reads oldest first.
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}

	series := &Series{
		Dates:    days,
		Counts:   make([]int, windowDays),
		Actual:   make([]int, windowDays),
		Expected: make([]int, windowDays),
	}
	running := 0
	for i, d := range days {
		n, err := s.store.CountTasksCompletedOn(d)
		if err != nil {
			return nil, err
		}
		running += n
		series.Counts[i] = n
		series.Actual[i] = running
		series.Expected[i] = expected * (i + 1)
	}
	return series, nil
}

// RecentCompleted lists completed tasks newest first. limit <= 0 means all.
func (s *Service) RecentCompleted(limit int) ([]store.Task, error) {
	return s.store.ListCompleted(limit)
}

// expectedPerDay reads the configured expectation, defaulting to 1 on a
// missing, non-numeric or non-positive value.
func (s *Service) expectedPerDay() int {
	raw := s.store.GetSettingDefault(SettingExpectedPerDay, "1")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/dailies/internal/apperr"
	"github.com/sadopc/dailies/internal/store"
)

func newService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	svc := New(s)
	svc.today = func() string { return "2026-09-01" }
	return svc, s
}

// completeOn inserts a task already completed on the given date.
func completeOn(t *testing.T, s *store.Store, title, date string) {
	t.Helper()
	_, err := s.InsertTask(&store.Task{
		Title:     title,
		Type:      store.TypeGoal,
		Status:    true,
		StartDate: date,
		EndDate:   &date,
	})
	require.NoError(t, err)
}

func TestCompletedCountOn(t *testing.T) {
	svc, s := newService(t)
	completeOn(t, s, "A", "2026-09-01")
	completeOn(t, s, "B", "2026-09-01")
	completeOn(t, s, "C", "2026-08-31")

	n, err := svc.CompletedCountOn("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.CompletedToday()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// No history is zero, not an error.
	n, err = svc.CompletedCountOn("1999-01-01")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCurrentStreakEmptyStore(t *testing.T) {
	svc, _ := newService(t)

	streak, err := svc.CurrentStreak()
	require.NoError(t, err)
	assert.Zero(t, streak)
}

func TestCurrentStreakThreeDays(t *testing.T) {
	svc, s := newService(t)
	completeOn(t, s, "A", "2026-09-01")
	completeOn(t, s, "B", "2026-08-31")
	completeOn(t, s, "C", "2026-08-30")
	// Gap on 2026-08-29, then older history that must not count.
	completeOn(t, s, "D", "2026-08-28")

	streak, err := svc.CurrentStreak()
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestCurrentStreakBrokenToday(t *testing.T) {
	svc, s := newService(t)
	// Completions only yesterday and before: nothing today means 0.
	completeOn(t, s, "A", "2026-08-31")
	completeOn(t, s, "B", "2026-08-30")

	streak, err := svc.CurrentStreak()
	require.NoError(t, err)
	assert.Zero(t, streak)
}

func TestRollingSeriesSeven(t *testing.T) {
	svc, s := newService(t)
	completeOn(t, s, "A", "2026-09-01")
	completeOn(t, s, "B", "2026-09-01")
	completeOn(t, s, "C", "2026-08-28")
	// Outside the window.
	completeOn(t, s, "D", "2026-08-20")

	series, err := svc.RollingSeries(7)
	require.NoError(t, err)

	require.Len(t, series.Dates, 7)
	assert.Equal(t, "2026-08-26", series.Dates[0])
	assert.Equal(t, "2026-09-01", series.Dates[6])

	assert.Equal(t, []int{0, 0, 1, 0, 0, 0, 2}, series.Counts)
	assert.Equal(t, []int{0, 0, 1, 1, 1, 1, 3}, series.Actual)

	// Last cumulative value equals total completions in the window.
	total := 0
	for _, c := range series.Counts {
		total += c
	}
	assert.Equal(t, total, series.Actual[6])

	// Default expectation of one per day.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, series.Expected)
}

func TestRollingSeriesExpectedSetting(t *testing.T) {
	svc, s := newService(t)
	require.NoError(t, s.SetSetting(SettingExpectedPerDay, "3"))

	series, err := svc.RollingSeries(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 9}, series.Expected)
}

func TestRollingSeriesExpectedInvalidDefaultsToOne(t *testing.T) {
	for _, bad := range []string{"0", "-2", "abc", ""} {
		t.Run(bad, func(t *testing.T) {
			svc, s := newService(t)
			require.NoError(t, s.SetSetting(SettingExpectedPerDay, bad))

			series, err := svc.RollingSeries(2)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2}, series.Expected)
		})
	}
}

func TestRollingSeriesRejectsNonPositiveWindow(t *testing.T) {
	svc, _ := newService(t)

	for _, window := range []int{0, -1} {
		series, err := svc.RollingSeries(window)
		assert.Nil(t, series)

		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "windowDays", ve.Field)
	}
}

func TestRecentCompleted(t *testing.T) {
	svc, s := newService(t)
	completeOn(t, s, "Old", "2026-08-10")
	completeOn(t, s, "Mid", "2026-08-20")
	completeOn(t, s, "New", "2026-09-01")

	got, err := svc.RecentCompleted(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "New", got[0].Title)
	assert.Equal(t, "Mid", got[1].Title)

	all, err := svc.RecentCompleted(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

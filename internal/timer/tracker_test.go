package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/dailies/internal/apperr"
	"github.com/sadopc/dailies/internal/store"
)

func newTracker(t *testing.T) (*Tracker, *time.Time) {
	t.Helper()
	s, err := store.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	tr := New(s)
	tr.now = func() time.Time { return clock }
	return tr, &clock
}

func TestStartStop(t *testing.T) {
	tr, clock := newTracker(t)

	require.NoError(t, tr.Start("Read"))
	running, label := tr.Running()
	assert.True(t, running)
	assert.Equal(t, "Read", label)

	*clock = clock.Add(65*time.Second + 900*time.Millisecond)

	entry, err := tr.Stop()
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Read", entry.TaskName)
	// Whole seconds, floored.
	assert.Equal(t, int64(65), entry.Seconds)
	// Stored at second precision.
	assert.WithinDuration(t, *clock, entry.Timestamp, time.Second)

	running, label = tr.Running()
	assert.False(t, running)
	assert.Empty(t, label)
}

func TestStartEmptyLabel(t *testing.T) {
	tr, _ := newTracker(t)

	err := tr.Start("   ")
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "taskLabel", ve.Field)
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	tr, clock := newTracker(t)

	require.NoError(t, tr.Start("Read"))
	*clock = clock.Add(10 * time.Second)
	require.NoError(t, tr.Start("Run"))

	// The first session keeps its label and its start instant.
	_, label := tr.Running()
	assert.Equal(t, "Read", label)
	assert.Equal(t, 10*time.Second, tr.Elapsed())
}

func TestStopWhileIdleIsNoop(t *testing.T) {
	tr, _ := newTracker(t)

	entry, err := tr.Stop()
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestElapsed(t *testing.T) {
	tr, clock := newTracker(t)

	assert.Zero(t, tr.Elapsed())

	require.NoError(t, tr.Start("Read"))
	*clock = clock.Add(42 * time.Second)
	assert.Equal(t, 42*time.Second, tr.Elapsed())

	// Polling does not mutate state.
	assert.Equal(t, 42*time.Second, tr.Elapsed())
}

func TestTotalSecondsByTask(t *testing.T) {
	tr, clock := newTracker(t)

	for _, span := range []struct {
		label string
		secs  int
	}{{"Read", 65}, {"Read", 35}, {"Run", 10}} {
		require.NoError(t, tr.Start(span.label))
		*clock = clock.Add(time.Duration(span.secs) * time.Second)
		_, err := tr.Stop()
		require.NoError(t, err)
	}

	totals, err := tr.TotalSecondsByTask()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Read": 100, "Run": 10}, totals)
}

func TestTopTotals(t *testing.T) {
	tr, clock := newTracker(t)

	for _, span := range []struct {
		label string
		secs  int
	}{{"A", 30}, {"B", 20}, {"C", 10}} {
		require.NoError(t, tr.Start(span.label))
		*clock = clock.Add(time.Duration(span.secs) * time.Second)
		_, err := tr.Stop()
		require.NoError(t, err)
	}

	top, err := tr.TopTotals(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].TaskName)
	assert.Equal(t, "B", top[1].TaskName)
}

func TestDeleteEntriesForTask(t *testing.T) {
	tr, clock := newTracker(t)

	for range 2 {
		require.NoError(t, tr.Start("X"))
		*clock = clock.Add(time.Second)
		_, err := tr.Stop()
		require.NoError(t, err)
	}
	require.NoError(t, tr.Start("Y"))
	*clock = clock.Add(time.Second)
	_, err := tr.Stop()
	require.NoError(t, err)

	n, err := tr.DeleteEntriesForTask("X")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	totals, err := tr.TotalSecondsByTask()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Y": 1}, totals)

	n, err = tr.DeleteEntriesForTask("X")
	require.NoError(t, err)
	assert.Zero(t, n)
}

package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/dailies/internal/apperr"
	"github.com/sadopc/dailies/internal/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	s, err := store.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	svc := New(s)
	svc.today = func() string { return "2026-09-01" }
	return svc
}

func TestAdd(t *testing.T) {
	svc := newService(t)

	got, err := svc.Add("  Read a chapter  ", store.TypeGoal)
	require.NoError(t, err)
	assert.Equal(t, "Read a chapter", got.Title)
	assert.Equal(t, store.TypeGoal, got.Type)
	assert.False(t, got.Status)
	assert.Equal(t, "2026-09-01", got.StartDate)
	assert.Nil(t, got.EndDate)
}

func TestAddEmptyTitle(t *testing.T) {
	svc := newService(t)

	_, err := svc.Add("   ", store.TypeGoal)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)
}

func TestAddUnknownType(t *testing.T) {
	svc := newService(t)

	_, err := svc.Add("Read", store.TaskType("Chore"))
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "type", ve.Field)
}

func TestCompleteGoal(t *testing.T) {
	svc := newService(t)
	created, err := svc.Add("Read", store.TypeGoal)
	require.NoError(t, err)

	done, err := svc.Complete(created.ID)
	require.NoError(t, err)
	assert.True(t, done.Status)
	require.NotNil(t, done.EndDate)
	assert.Equal(t, "2026-09-01", *done.EndDate)

	// A Goal spawns no successor.
	ongoing, err := svc.Ongoing()
	require.NoError(t, err)
	assert.Empty(t, ongoing)
}

func TestCompleteNonNegotiableSpawnsSuccessor(t *testing.T) {
	svc := newService(t)
	created, err := svc.Add("Meditate", store.TypeNonNegotiable)
	require.NoError(t, err)

	_, err = svc.Complete(created.ID)
	require.NoError(t, err)

	ongoing, err := svc.Ongoing()
	require.NoError(t, err)
	require.Len(t, ongoing, 1)

	succ := ongoing[0]
	assert.Equal(t, "Meditate", succ.Title)
	assert.Equal(t, store.TypeNonNegotiable, succ.Type)
	assert.False(t, succ.Status)
	assert.Equal(t, "2026-09-02", succ.StartDate)
	assert.Nil(t, succ.EndDate)
	assert.NotEqual(t, created.ID, succ.ID)
}

func TestCompleteAcrossMonthBoundary(t *testing.T) {
	svc := newService(t)
	svc.today = func() string { return "2026-12-31" }

	created, err := svc.Add("Meditate", store.TypeNonNegotiable)
	require.NoError(t, err)
	_, err = svc.Complete(created.ID)
	require.NoError(t, err)

	ongoing, _ := svc.Ongoing()
	require.Len(t, ongoing, 1)
	assert.Equal(t, "2027-01-01", ongoing[0].StartDate)
}

func TestCompleteNotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.Complete(12345)
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDelete(t *testing.T) {
	svc := newService(t)
	created, err := svc.Add("Read", store.TypeGoal)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	var nf *apperr.NotFoundError
	require.ErrorAs(t, svc.Delete(created.ID), &nf)
}

func TestDeleteCompletedTask(t *testing.T) {
	svc := newService(t)
	created, err := svc.Add("Read", store.TypeGoal)
	require.NoError(t, err)
	_, err = svc.Complete(created.ID)
	require.NoError(t, err)

	// Completed is not terminal for deletion.
	require.NoError(t, svc.Delete(created.ID))
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMarkCompletedStampsTimestamp(t *testing.T) {
	db := newTestDB(t)
	svc := NewPerformanceService(db)

	performance := createPerformance(t, db, "Aarav Sharma")

	updated, already, err := svc.MarkCompleted(performance.ID)
	require.NoError(t, err)
	require.False(t, already)
	require.True(t, updated.IsCompleted)
	require.NotNil(t, updated.CompletedAt)
	require.WithinDuration(t, time.Now().UTC(), *updated.CompletedAt, 5*time.Second)

	// Persisted state matches.
	stored, err := svc.Get(performance.ID)
	require.NoError(t, err)
	require.True(t, stored.IsCompleted)
	require.NotNil(t, stored.CompletedAt)
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewPerformanceService(db)

	performance := createPerformance(t, db, "Aarav Sharma")

	first, already, err := svc.MarkCompleted(performance.ID)
	require.NoError(t, err)
	require.False(t, already)

	second, already, err := svc.MarkCompleted(performance.ID)
	require.NoError(t, err)
	require.True(t, already)
	require.NotNil(t, second.CompletedAt)
	require.True(t, first.CompletedAt.Equal(*second.CompletedAt))
}

func TestMarkUncompletedClearsTimestamp(t *testing.T) {
	db := newTestDB(t)
	svc := NewPerformanceService(db)

	performance := createPerformance(t, db, "Aarav Sharma")

	_, _, err := svc.MarkCompleted(performance.ID)
	require.NoError(t, err)

	updated, already, err := svc.MarkUncompleted(performance.ID)
	require.NoError(t, err)
	require.False(t, already)
	require.False(t, updated.IsCompleted)
	require.Nil(t, updated.CompletedAt)

	stored, err := svc.Get(performance.ID)
	require.NoError(t, err)
	require.False(t, stored.IsCompleted)
	require.Nil(t, stored.CompletedAt)
}

func TestMarkUncompletedOnPendingIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := NewPerformanceService(db)

	performance := createPerformance(t, db, "Aarav Sharma")

	updated, already, err := svc.MarkUncompleted(performance.ID)
	require.NoError(t, err)
	require.True(t, already)
	require.False(t, updated.IsCompleted)
	require.Nil(t, updated.CompletedAt)
}

func TestCompletionInvariantHolds(t *testing.T) {
	db := newTestDB(t)
	svc := NewPerformanceService(db)

	performance := createPerformance(t, db, "Aarav Sharma")

	states := []func() error{
		func() error { _, _, err := svc.MarkCompleted(performance.ID); return err },
		func() error { _, _, err := svc.MarkCompleted(performance.ID); return err },
		func() error { _, _, err := svc.MarkUncompleted(performance.ID); return err },
		func() error { _, _, err := svc.MarkUncompleted(performance.ID); return err },
		func() error { _, _, err := svc.MarkCompleted(performance.ID); return err },
	}

	for _, step := range states {
		require.NoError(t, step())
		current, err := svc.Get(performance.ID)
		require.NoError(t, err)
		require.Equal(t, current.IsCompleted, current.CompletedAt != nil)
	}
}

func TestUpdateNotes(t *testing.T) {
	db := newTestDB(t)
	svc := NewPerformanceService(db)

	performance := createPerformance(t, db, "Aarav Sharma")

	updated, err := svc.UpdateNotes(performance.ID, "needs a second mic")
	require.NoError(t, err)
	require.Equal(t, "needs a second mic", updated.Notes)

	// Notes editing does not touch completion state.
	require.False(t, updated.IsCompleted)
	require.Nil(t, updated.CompletedAt)
}

func TestPerformanceUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewPerformanceService(db)

	_, _, err := svc.MarkCompleted(999)
	require.ErrorIs(t, err, ErrPerformanceNotFound)

	_, _, err = svc.MarkUncompleted(999)
	require.ErrorIs(t, err, ErrPerformanceNotFound)

	_, err = svc.UpdateNotes(999, "x")
	require.ErrorIs(t, err, ErrPerformanceNotFound)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arnold/tracker/internal/domain"
)

// Fixed clock: Saturday 2025-06-07, noon UTC.
var testNow = time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)

func newTestWorkoutService(repo *fakeWorkoutRepo) *workoutService {
	svc := NewWorkoutService(repo, time.UTC).(*workoutService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestSaveWorkoutFiltersInvalidSets(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := newTestWorkoutService(repo)

	saved, err := svc.SaveWorkout(context.Background(), "u1", "2025-06-07", "Pierna", []domain.Exercise{
		{ID: 1, Name: "Sentadilla", Sets: []domain.Set{
			{Weight: "120", Reps: "5"},
			{Weight: "", Reps: "5"},     // dropped
			{Weight: "120", Reps: "0"},  // dropped
		}},
		{ID: 2, Name: "Prensa", Sets: []domain.Set{
			{Weight: "", Reps: ""}, // exercise left empty, dropped entirely
		}},
	})
	require.NoError(t, err)

	require.Len(t, saved.Exercises, 1)
	assert.Equal(t, "Sentadilla", saved.Exercises[0].Name)
	assert.Len(t, saved.Exercises[0].Sets, 1)
	assert.False(t, saved.IsRestDay)
}

func TestSaveWorkoutRejectsWithoutValidSets(t *testing.T) {
	svc := newTestWorkoutService(newFakeWorkoutRepo())

	_, err := svc.SaveWorkout(context.Background(), "u1", "2025-06-07", "Pierna", []domain.Exercise{
		{Name: "Sentadilla", Sets: []domain.Set{{Weight: "", Reps: "5"}}},
	})
	assert.ErrorIs(t, err, ErrNoValidSets)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestSaveWorkoutDateRules(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := newTestWorkoutService(repo)
	exercises := []domain.Exercise{{Name: "Sentadilla", Sets: []domain.Set{{Weight: "100", Reps: "5"}}}}

	_, err := svc.SaveWorkout(context.Background(), "u1", "2025-06-08", "Pierna", exercises)
	assert.ErrorIs(t, err, ErrFutureDate)

	_, err = svc.SaveWorkout(context.Background(), "u1", "07/06/2025", "Pierna", exercises)
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Empty date defaults to today.
	saved, err := svc.SaveWorkout(context.Background(), "u1", "", "Pierna", exercises)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-07", saved.Date)

	// Past dates are fine.
	_, err = svc.SaveWorkout(context.Background(), "u1", "2025-06-01", "Pierna", exercises)
	assert.NoError(t, err)
}

func TestSaveWorkoutIdempotentUpsert(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := newTestWorkoutService(repo)
	exercises := []domain.Exercise{{Name: "Sentadilla", Sets: []domain.Set{{Weight: "100", Reps: "5"}}}}

	_, err := svc.SaveWorkout(context.Background(), "u1", "2025-06-07", "Pierna", exercises)
	require.NoError(t, err)
	_, err = svc.SaveWorkout(context.Background(), "u1", "2025-06-07", "Pecho y Espalda", exercises)
	require.NoError(t, err)

	all, _ := repo.GetAll(context.Background(), "u1")
	require.Len(t, all, 1)
	assert.Equal(t, "Pecho y Espalda", all[0].Split)
}

func TestSaveWorkoutReplacesRestDay(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := newTestWorkoutService(repo)

	_, err := svc.LogRestDay(context.Background(), "u1", "2025-06-07")
	require.NoError(t, err)

	_, err = svc.SaveWorkout(context.Background(), "u1", "2025-06-07", "Pierna",
		[]domain.Exercise{{Name: "Sentadilla", Sets: []domain.Set{{Weight: "100", Reps: "5"}}}})
	require.NoError(t, err)

	stored, err := repo.GetByDate(context.Background(), "u1", "2025-06-07")
	require.NoError(t, err)
	assert.False(t, stored.IsRestDay)
	assert.Equal(t, "Pierna", stored.Split)
}

func TestLogRestDayShape(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := newTestWorkoutService(repo)

	// Empty date defaults to today.
	rest, err := svc.LogRestDay(context.Background(), "u1", "")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-07", rest.Date)
	assert.Equal(t, domain.RestSplitName, rest.Split)
	assert.True(t, rest.IsRestDay)
	assert.Empty(t, rest.Exercises)

	_, err = svc.LogRestDay(context.Background(), "u1", "2025-06-08")
	assert.ErrorIs(t, err, ErrFutureDate)
}

func TestUpdateWorkoutExercises(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := newTestWorkoutService(repo)

	_, err := svc.UpdateWorkoutExercises(context.Background(), "u1", "2025-06-07", nil)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	_, err = svc.SaveWorkout(context.Background(), "u1", "2025-06-07", "Pierna",
		[]domain.Exercise{{Name: "Sentadilla", Sets: []domain.Set{{Weight: "100", Reps: "5"}}}})
	require.NoError(t, err)

	updated, err := svc.UpdateWorkoutExercises(context.Background(), "u1", "2025-06-07", []domain.Exercise{
		{Name: "Sentadilla", Sets: []domain.Set{{Weight: "110", Reps: "5"}, {Weight: "x", Reps: "5"}}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Exercises, 1)
	assert.Len(t, updated.Exercises[0].Sets, 1)
	assert.Equal(t, "110", updated.Exercises[0].Sets[0].Weight)

	// Editing away every valid set is rejected rather than storing an empty
	// training entry.
	_, err = svc.UpdateWorkoutExercises(context.Background(), "u1", "2025-06-07", []domain.Exercise{
		{Name: "Sentadilla", Sets: []domain.Set{{Weight: "", Reps: ""}}},
	})
	assert.ErrorIs(t, err, ErrNoValidSets)
}

func TestDeleteWorkout(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := newTestWorkoutService(repo)

	assert.ErrorIs(t, svc.DeleteWorkout(context.Background(), "u1", "2025-06-07"), ErrWorkoutNotFound)

	_, err := svc.SaveWorkout(context.Background(), "u1", "2025-06-07", "Pierna",
		[]domain.Exercise{{Name: "Sentadilla", Sets: []domain.Set{{Weight: "100", Reps: "5"}}}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWorkout(context.Background(), "u1", "2025-06-07"))
	all, _ := repo.GetAll(context.Background(), "u1")
	assert.Empty(t, all)
}

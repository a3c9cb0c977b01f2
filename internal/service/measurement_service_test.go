package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arnold/tracker/internal/domain"
)

func newTestMeasurementService(repo *fakeMeasurementRepo) *measurementService {
	svc := NewMeasurementService(repo, time.UTC).(*measurementService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestSaveMeasurement(t *testing.T) {
	repo := newFakeMeasurementRepo()
	svc := newTestMeasurementService(repo)
	chest := 102.0

	saved, err := svc.SaveMeasurement(context.Background(), "u1", domain.BodyMeasurement{
		Weight: 82.5,
		Chest:  &chest,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-07", saved.Date) // defaults to today
	assert.NotZero(t, saved.ID)

	_, err = svc.SaveMeasurement(context.Background(), "u1", domain.BodyMeasurement{Weight: 0, Date: "2025-06-01"})
	assert.ErrorIs(t, err, ErrInvalidMeasurement)

	_, err = svc.SaveMeasurement(context.Background(), "u1", domain.BodyMeasurement{Weight: 82, Date: "2025-06-08"})
	assert.ErrorIs(t, err, ErrFutureDate)
}

func TestSaveMeasurementMergesByDate(t *testing.T) {
	repo := newFakeMeasurementRepo()
	svc := newTestMeasurementService(repo)

	_, err := svc.SaveMeasurement(context.Background(), "u1", domain.BodyMeasurement{Weight: 82, Date: "2025-06-01"})
	require.NoError(t, err)
	_, err = svc.SaveMeasurement(context.Background(), "u1", domain.BodyMeasurement{Weight: 81.4, Date: "2025-06-01"})
	require.NoError(t, err)

	all, _ := repo.GetAll(context.Background(), "u1")
	require.Len(t, all, 1)
	assert.Equal(t, 81.4, all[0].Weight)
}

package service

import (
	"context"
	"time"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/repository"
)

// MeasurementService owns the body-measurement log, one entry per date,
// merged on save.
type MeasurementService interface {
	GetMeasurements(ctx context.Context, userID string) ([]domain.BodyMeasurement, error)
	SaveMeasurement(ctx context.Context, userID string, m domain.BodyMeasurement) (*domain.BodyMeasurement, error)
	DeleteMeasurement(ctx context.Context, userID, date string) error
}

type measurementService struct {
	measurementRepo repository.MeasurementRepository
	loc             *time.Location
	now             func() time.Time
}

// NewMeasurementService creates a measurement service anchored to the given timezone.
func NewMeasurementService(measurementRepo repository.MeasurementRepository, loc *time.Location) MeasurementService {
	return &measurementService{
		measurementRepo: measurementRepo,
		loc:             loc,
		now:             time.Now,
	}
}

func (s *measurementService) GetMeasurements(ctx context.Context, userID string) ([]domain.BodyMeasurement, error) {
	return s.measurementRepo.GetAll(ctx, userID)
}

func (s *measurementService) SaveMeasurement(ctx context.Context, userID string, m domain.BodyMeasurement) (*domain.BodyMeasurement, error) {
	today := domain.FormatDate(domain.CivilDate(s.now(), s.loc))
	if m.Date == "" {
		m.Date = today
	}
	if _, err := domain.ParseDate(m.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if m.Date > today {
		return nil, ErrFutureDate
	}
	if m.Weight <= 0 {
		return nil, ErrInvalidMeasurement
	}

	if m.ID == 0 {
		m.ID = s.now().UnixMilli()
	}
	m.UserID = userID
	if err := s.measurementRepo.Upsert(ctx, userID, m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *measurementService) DeleteMeasurement(ctx context.Context, userID, date string) error {
	return s.measurementRepo.Delete(ctx, userID, date)
}

package service

import (
	"context"
	"errors"
	"time"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/repository"
)

// WorkoutService owns the write path of the workout log: one entry per user
// per calendar date, saved as an idempotent merge upsert.
type WorkoutService interface {
	GetWorkouts(ctx context.Context, userID string) ([]domain.Workout, error)
	SaveWorkout(ctx context.Context, userID, date, split string, exercises []domain.Exercise) (*domain.Workout, error)
	UpdateWorkoutExercises(ctx context.Context, userID, date string, exercises []domain.Exercise) (*domain.Workout, error)
	LogRestDay(ctx context.Context, userID, date string) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, userID, date string) error
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	loc         *time.Location
	now         func() time.Time // injectable for tests
}

// NewWorkoutService creates a workout service anchored to the given timezone;
// "today" and the future-date check are evaluated against it.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, loc *time.Location) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		loc:         loc,
		now:         time.Now,
	}
}

func (s *workoutService) today() string {
	return domain.FormatDate(domain.CivilDate(s.now(), s.loc))
}

// checkDate validates the date format and rejects dates after today in the
// service timezone. An empty date defaults to today.
func (s *workoutService) checkDate(date string) (string, error) {
	if date == "" {
		return s.today(), nil
	}
	if _, err := domain.ParseDate(date); err != nil {
		return "", ErrInvalidDate
	}
	// Lexicographic comparison is chronological for YYYY-MM-DD.
	if date > s.today() {
		return "", ErrFutureDate
	}
	return date, nil
}

// filterExercises applies the set-validity rule at save time: invalid sets
// are dropped, exercises left without sets are dropped entirely.
func filterExercises(exercises []domain.Exercise) []domain.Exercise {
	kept := make([]domain.Exercise, 0, len(exercises))
	for _, e := range exercises {
		valid := e.ValidSets()
		if len(valid) == 0 {
			continue
		}
		kept = append(kept, domain.Exercise{ID: e.ID, Name: e.Name, Sets: valid})
	}
	return kept
}

func (s *workoutService) GetWorkouts(ctx context.Context, userID string) ([]domain.Workout, error) {
	return s.workoutRepo.GetAll(ctx, userID)
}

// SaveWorkout stores a training entry for the date. Saving the same date
// twice overwrites the previous entry, including a rest day logged earlier.
func (s *workoutService) SaveWorkout(ctx context.Context, userID, date, split string, exercises []domain.Exercise) (*domain.Workout, error) {
	date, err := s.checkDate(date)
	if err != nil {
		return nil, err
	}

	kept := filterExercises(exercises)
	if len(kept) == 0 {
		return nil, ErrNoValidSets
	}

	workout := domain.Workout{
		ID:        s.now().UnixMilli(),
		UserID:    userID,
		Date:      date,
		Split:     split,
		Exercises: kept,
	}
	if err := s.workoutRepo.Upsert(ctx, userID, workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// UpdateWorkoutExercises replaces the exercise list of an existing entry,
// applying the same set-validity rule as SaveWorkout.
func (s *workoutService) UpdateWorkoutExercises(ctx context.Context, userID, date string, exercises []domain.Exercise) (*domain.Workout, error) {
	existing, err := s.workoutRepo.GetByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	kept := filterExercises(exercises)
	if len(kept) == 0 {
		return nil, ErrNoValidSets
	}

	updated := *existing
	updated.Exercises = kept
	updated.IsRestDay = false
	if err := s.workoutRepo.Upsert(ctx, userID, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// LogRestDay stores a rest-day entry for the date (today when empty). The
// entry carries the rest sentinel split and no exercises.
func (s *workoutService) LogRestDay(ctx context.Context, userID, date string) (*domain.Workout, error) {
	date, err := s.checkDate(date)
	if err != nil {
		return nil, err
	}

	workout := domain.Workout{
		ID:        s.now().UnixMilli(),
		UserID:    userID,
		Date:      date,
		Split:     domain.RestSplitName,
		Exercises: []domain.Exercise{},
		IsRestDay: true,
	}
	if err := s.workoutRepo.Upsert(ctx, userID, workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, userID, date string) error {
	err := s.workoutRepo.Delete(ctx, userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

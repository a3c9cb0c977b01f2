package service

import (
	"context"
	"time"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/session"
	"arnold/tracker/internal/stats"
)

// StatsService serves every derived view of the workout log: dashboard
// metrics, personal records, trends and chart series. All computations run
// over the live session snapshot, so a save is reflected in the next stats
// request without an explicit refresh.
type StatsService interface {
	Dashboard(ctx context.Context, userID string) (stats.DashboardStats, error)
	Records(ctx context.Context, userID string) ([]stats.PersonalRecord, error)
	Trends(ctx context.Context, userID string) (stats.PerformanceStats, error)
	WeeklyVolume(ctx context.Context, userID string) ([]stats.WeekVolume, error)
	MaxWeightSeries(ctx context.Context, userID, exercise string) ([]stats.WeightPoint, error)
	SplitVolumeSeries(ctx context.Context, userID string) (map[string][]stats.VolumePoint, error)
	VolumeByExercise(ctx context.Context, userID string) ([]stats.ExerciseVolumeSummary, error)
	ExercisesWithData(ctx context.Context, userID string) ([]string, error)
}

type statsService struct {
	sessions *session.Manager
	profiles ProfileService
	splits   SplitService
	loc      *time.Location
	now      func() time.Time
}

// NewStatsService creates a stats service over the session manager; profile
// and split configuration feed the streak allowance and the per-split series.
func NewStatsService(sessions *session.Manager, profiles ProfileService, splits SplitService, loc *time.Location) StatsService {
	return &statsService{
		sessions: sessions,
		profiles: profiles,
		splits:   splits,
		loc:      loc,
		now:      time.Now,
	}
}

func (s *statsService) today() time.Time {
	return domain.CivilDate(s.now(), s.loc)
}

func (s *statsService) workouts(ctx context.Context, userID string) ([]domain.Workout, error) {
	live, err := s.sessions.Attach(ctx, userID)
	if err != nil {
		return nil, err
	}
	return live.Workouts(), nil
}

func (s *statsService) Dashboard(ctx context.Context, userID string) (stats.DashboardStats, error) {
	workouts, err := s.workouts(ctx, userID)
	if err != nil {
		return stats.DashboardStats{}, err
	}
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return stats.DashboardStats{}, err
	}
	return stats.Dashboard(workouts, profile, s.today()), nil
}

func (s *statsService) Records(ctx context.Context, userID string) ([]stats.PersonalRecord, error) {
	workouts, err := s.workouts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.PersonalRecords(workouts), nil
}

func (s *statsService) Trends(ctx context.Context, userID string) (stats.PerformanceStats, error) {
	workouts, err := s.workouts(ctx, userID)
	if err != nil {
		return stats.PerformanceStats{}, err
	}
	return stats.PerformanceTrends(workouts, s.today()), nil
}

func (s *statsService) WeeklyVolume(ctx context.Context, userID string) ([]stats.WeekVolume, error) {
	workouts, err := s.workouts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.WeeklyVolume(workouts, s.today()), nil
}

func (s *statsService) MaxWeightSeries(ctx context.Context, userID, exercise string) ([]stats.WeightPoint, error) {
	workouts, err := s.workouts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.MaxWeightSeries(workouts, exercise), nil
}

func (s *statsService) SplitVolumeSeries(ctx context.Context, userID string) (map[string][]stats.VolumePoint, error) {
	workouts, err := s.workouts(ctx, userID)
	if err != nil {
		return nil, err
	}
	cfg, err := s.splits.GetConfig(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cfg.Splits))
	for name := range cfg.Splits {
		names = append(names, name)
	}
	return stats.SplitVolumeSeries(workouts, names), nil
}

func (s *statsService) VolumeByExercise(ctx context.Context, userID string) ([]stats.ExerciseVolumeSummary, error) {
	workouts, err := s.workouts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.VolumeByExercise(workouts), nil
}

func (s *statsService) ExercisesWithData(ctx context.Context, userID string) ([]string, error) {
	workouts, err := s.workouts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.ExercisesWithData(workouts), nil
}

package service

import (
	"context"
	"strings"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/repository"
)

// SplitService manages the per-user split configuration: the three parallel
// maps (exercises, color, muscles per split) plus the rename cascade into
// stored workouts.
type SplitService interface {
	// GetConfig returns the user's split configuration, seeding and
	// persisting the default three-way split on first load.
	GetConfig(ctx context.Context, userID string) (domain.SplitConfig, error)
	// SaveConfig merges a full configuration into the stored document.
	SaveConfig(ctx context.Context, userID string, cfg domain.SplitConfig) error
	AddSplit(ctx context.Context, userID, name, color string, muscles []string) (domain.SplitConfig, error)
	UpdateSplitExercises(ctx context.Context, userID, name string, exercises []string) (domain.SplitConfig, error)
	// RenameSplit moves the split's entry across all three maps and rewrites
	// every stored workout referencing the old name.
	RenameSplit(ctx context.Context, userID, oldName, newName string) (domain.SplitConfig, error)
	// DeleteSplit removes the split from all three maps; the last remaining
	// split cannot be deleted. Workouts keep their historical split name.
	DeleteSplit(ctx context.Context, userID, name string) (domain.SplitConfig, error)
}

type splitService struct {
	splitRepo   repository.SplitConfigRepository
	workoutRepo repository.WorkoutRepository
}

// NewSplitService creates a split service over the settings and workout stores.
func NewSplitService(splitRepo repository.SplitConfigRepository, workoutRepo repository.WorkoutRepository) SplitService {
	return &splitService{
		splitRepo:   splitRepo,
		workoutRepo: workoutRepo,
	}
}

func (s *splitService) GetConfig(ctx context.Context, userID string) (domain.SplitConfig, error) {
	cfg, err := s.splitRepo.Get(ctx, userID)
	if err != nil {
		return domain.SplitConfig{}, err
	}
	if !cfg.IsEmpty() {
		return cfg, nil
	}

	// First load: seed the default and write it back so later edits merge
	// into a real document.
	cfg = domain.DefaultSplitConfig()
	if err := s.splitRepo.Save(ctx, userID, cfg); err != nil {
		return domain.SplitConfig{}, err
	}
	return cfg, nil
}

func (s *splitService) SaveConfig(ctx context.Context, userID string, cfg domain.SplitConfig) error {
	if cfg.IsEmpty() {
		return ErrLastSplit
	}
	for name := range cfg.Splits {
		if strings.TrimSpace(name) == "" {
			return ErrEmptySplitName
		}
	}
	return s.splitRepo.Save(ctx, userID, cfg)
}

func (s *splitService) AddSplit(ctx context.Context, userID, name, color string, muscles []string) (domain.SplitConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.SplitConfig{}, ErrEmptySplitName
	}

	cfg, err := s.GetConfig(ctx, userID)
	if err != nil {
		return domain.SplitConfig{}, err
	}
	if _, exists := cfg.Splits[name]; exists {
		return domain.SplitConfig{}, ErrSplitExists
	}

	updated := cfg.Clone()
	updated.Splits[name] = []string{}
	updated.Colors[name] = color
	updated.Muscles[name] = append([]string(nil), muscles...)

	if err := s.splitRepo.Save(ctx, userID, updated); err != nil {
		return domain.SplitConfig{}, err
	}
	return updated, nil
}

func (s *splitService) UpdateSplitExercises(ctx context.Context, userID, name string, exercises []string) (domain.SplitConfig, error) {
	cfg, err := s.GetConfig(ctx, userID)
	if err != nil {
		return domain.SplitConfig{}, err
	}
	if _, exists := cfg.Splits[name]; !exists {
		return domain.SplitConfig{}, ErrSplitNotFound
	}

	updated := cfg.Clone()
	updated.Splits[name] = append([]string(nil), exercises...)

	if err := s.splitRepo.Save(ctx, userID, updated); err != nil {
		return domain.SplitConfig{}, err
	}
	return updated, nil
}

func (s *splitService) RenameSplit(ctx context.Context, userID, oldName, newName string) (domain.SplitConfig, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return domain.SplitConfig{}, ErrEmptySplitName
	}
	if newName == oldName {
		cfg, err := s.GetConfig(ctx, userID)
		return cfg, err
	}

	cfg, err := s.GetConfig(ctx, userID)
	if err != nil {
		return domain.SplitConfig{}, err
	}
	if _, exists := cfg.Splits[oldName]; !exists {
		return domain.SplitConfig{}, ErrSplitNotFound
	}
	if _, exists := cfg.Splits[newName]; exists {
		return domain.SplitConfig{}, ErrSplitExists
	}

	updated := cfg.Clone()
	updated.Splits[newName] = updated.Splits[oldName]
	delete(updated.Splits, oldName)
	if color, ok := updated.Colors[oldName]; ok {
		updated.Colors[newName] = color
		delete(updated.Colors, oldName)
	}
	if muscles, ok := updated.Muscles[oldName]; ok {
		updated.Muscles[newName] = muscles
		delete(updated.Muscles, oldName)
	}

	// Replace, not merge: the old name's keys must disappear.
	if err := s.splitRepo.Replace(ctx, userID, updated); err != nil {
		return domain.SplitConfig{}, err
	}

	// Cascade into the workout log so no entry is left referencing the old
	// name.
	if err := s.workoutRepo.RenameSplit(ctx, userID, oldName, newName); err != nil {
		return domain.SplitConfig{}, err
	}
	return updated, nil
}

func (s *splitService) DeleteSplit(ctx context.Context, userID, name string) (domain.SplitConfig, error) {
	cfg, err := s.GetConfig(ctx, userID)
	if err != nil {
		return domain.SplitConfig{}, err
	}
	if _, exists := cfg.Splits[name]; !exists {
		return domain.SplitConfig{}, ErrSplitNotFound
	}
	if len(cfg.Splits) <= 1 {
		return domain.SplitConfig{}, ErrLastSplit
	}

	updated := cfg.Clone()
	delete(updated.Splits, name)
	delete(updated.Colors, name)
	delete(updated.Muscles, name)

	if err := s.splitRepo.Replace(ctx, userID, updated); err != nil {
		return domain.SplitConfig{}, err
	}
	return updated, nil
}

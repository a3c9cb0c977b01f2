package service

import (
	"context"
	"errors"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/repository"
)

// ProfileService owns the singleton per-user profile. The rest-day allowance
// stored here feeds the streak calculation.
type ProfileService interface {
	// GetProfile returns the stored profile, or a zero profile when the user
	// has never saved one. A missing profile is not an error.
	GetProfile(ctx context.Context, userID string) (domain.UserProfile, error)
	SaveProfile(ctx context.Context, userID string, profile domain.UserProfile) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a profile service over the profile store.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.UserProfile{}, nil
		}
		return domain.UserProfile{}, err
	}
	return *profile, nil
}

func (s *profileService) SaveProfile(ctx context.Context, userID string, profile domain.UserProfile) error {
	if profile.Age < 0 || profile.Height < 0 || profile.Weight < 0 {
		return ErrInvalidProfile
	}
	if profile.RestDaysPerWeek < 0 || profile.RestDaysPerWeek > domain.MaxRestDaysPerWeek {
		return ErrInvalidProfile
	}
	return s.profileRepo.Save(ctx, userID, profile)
}

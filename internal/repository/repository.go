package repository

import (
	"context"

	"arnold/tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error taxonomy surfaced by every repository. Store failures are mapped
// into these sentinels so callers can translate them into user-facing
// messages (and, for ErrUnauthenticated, a re-authentication prompt) without
// knowing the driver.
var (
	ErrNotFound         = RepositoryError("not found")
	ErrPermissionDenied = RepositoryError("permission denied")
	ErrUnavailable      = RepositoryError("store unavailable")
	ErrUnauthenticated  = RepositoryError("unauthenticated")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutRepository is the document-store interface for workout entries.
// Documents are keyed by (userID, date): saving is a per-field merge upsert,
// so writing the same date twice is idempotent and last-write-wins.
type WorkoutRepository interface {
	GetAll(ctx context.Context, userID string) ([]domain.Workout, error)
	GetByDate(ctx context.Context, userID, date string) (*domain.Workout, error)
	Upsert(ctx context.Context, userID string, workout domain.Workout) error
	Delete(ctx context.Context, userID, date string) error
	// RenameSplit rewrites the split field of every workout referencing
	// oldName; part of the split-rename cascade.
	RenameSplit(ctx context.Context, userID, oldName, newName string) error
	// Subscribe opens a live feed that delivers the user's complete workout
	// list as a full replacement snapshot on every change (never a diff).
	Subscribe(ctx context.Context, userID string) (*Subscription[domain.Workout], error)
}

// MeasurementRepository stores body measurements, one document per date.
type MeasurementRepository interface {
	GetAll(ctx context.Context, userID string) ([]domain.BodyMeasurement, error)
	Upsert(ctx context.Context, userID string, m domain.BodyMeasurement) error
	Delete(ctx context.Context, userID, date string) error
	Subscribe(ctx context.Context, userID string) (*Subscription[domain.BodyMeasurement], error)
}

// NoteRepository stores quick notes under the date_id composite key, so a
// date may hold several notes.
type NoteRepository interface {
	GetAll(ctx context.Context, userID string) ([]domain.QuickNote, error)
	Upsert(ctx context.Context, userID string, note domain.QuickNote) error
	Delete(ctx context.Context, userID, date string, id int64) error
}

// ProfileRepository stores the singleton per-user profile document.
type ProfileRepository interface {
	// Get returns ErrNotFound when the user has no stored profile yet.
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	// Save merges the given fields into the stored document.
	Save(ctx context.Context, userID string, profile domain.UserProfile) error
}

// SplitConfigRepository stores the per-user split configuration (splits,
// colors, muscles maps) as one settings document.
type SplitConfigRepository interface {
	// Get returns a config with empty maps when nothing is stored yet.
	Get(ctx context.Context, userID string) (domain.SplitConfig, error)
	// Save merges the given maps into the stored document.
	Save(ctx context.Context, userID string, cfg domain.SplitConfig) error
	// Replace overwrites the stored document entirely, so keys removed by a
	// rename or delete actually disappear.
	Replace(ctx context.Context, userID string, cfg domain.SplitConfig) error
}

// UserRepository is the identity store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

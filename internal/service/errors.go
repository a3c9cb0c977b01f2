package service

import (
	"errors"
	"fmt"
)

// ErrValidationFailed is the base of every input-validation error so the API
// layer can map the whole family to one HTTP status with errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// --- Validation Error Definitions ---
var (
	ErrInvalidDate        = fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrValidationFailed)
	ErrFutureDate         = fmt.Errorf("%w: date is in the future", ErrValidationFailed)
	ErrNoValidSets        = fmt.Errorf("%w: workout needs at least one exercise with a valid set", ErrValidationFailed)
	ErrEmptySplitName     = fmt.Errorf("%w: split name cannot be empty", ErrValidationFailed)
	ErrSplitExists        = fmt.Errorf("%w: a split with this name already exists", ErrValidationFailed)
	ErrSplitNotFound      = fmt.Errorf("%w: split does not exist", ErrValidationFailed)
	ErrLastSplit          = fmt.Errorf("%w: at least one split must remain", ErrValidationFailed)
	ErrInvalidMeasurement = fmt.Errorf("%w: measurement weight must be positive", ErrValidationFailed)
	ErrEmptyNote          = fmt.Errorf("%w: note content cannot be empty", ErrValidationFailed)
	ErrInvalidProfile     = fmt.Errorf("%w: profile values out of range", ErrValidationFailed)
)

// ErrWorkoutNotFound is returned when an operation targets a date with no
// logged workout.
var ErrWorkoutNotFound = errors.New("no workout logged for this date")

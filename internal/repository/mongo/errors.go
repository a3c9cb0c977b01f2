package mongo

import (
	"context"
	"errors"
	"fmt"

	"arnold/tracker/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// Server error codes that indicate an identity or authorization failure
// rather than a data problem.
const (
	codeUnauthorized         = 13
	codeAuthenticationFailed = 18
)

// mapError translates driver errors into the repository error taxonomy so
// that no mongo-specific error type escapes this package. Errors that do not
// fit a category are passed through wrapped, keeping their message for logs.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		switch cmdErr.Code {
		case codeUnauthorized:
			return fmt.Errorf("%w: %s", repository.ErrPermissionDenied, cmdErr.Message)
		case codeAuthenticationFailed:
			return fmt.Errorf("%w: %s", repository.ErrUnauthenticated, cmdErr.Message)
		}
	}

	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}

	return err
}

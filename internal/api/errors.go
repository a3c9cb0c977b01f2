package api

import (
	"errors"
	"net/http"

	"arnold/tracker/internal/repository"
	"arnold/tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// respondError maps service and repository errors onto HTTP statuses. The
// unauthenticated case additionally flags that the client should re-login
// rather than retry.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, repository.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserAlreadyExists):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, repository.ErrUnauthenticated):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":       "Session is no longer authenticated, please sign in again",
			"reauthorize": true,
		})
	case errors.Is(err, repository.ErrPermissionDenied):
		abortWithError(c, http.StatusForbidden, "You do not have access to this data")
	case errors.Is(err, repository.ErrUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, "The data store is temporarily unavailable, please retry")
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

package api

import (
	"net/http"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler exposes the workout log write and read endpoints.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

type SaveWorkoutRequest struct {
	Date      string            `json:"date"` // empty means today
	Split     string            `json:"split" binding:"required"`
	Exercises []domain.Exercise `json:"exercises" binding:"required"`
}

type UpdateExercisesRequest struct {
	Exercises []domain.Exercise `json:"exercises" binding:"required"`
}

type RestDayRequest struct {
	Date string `json:"date"` // empty means today
}

// GetWorkouts returns the user's full workout log, date ascending.
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	workouts, err := h.workoutService.GetWorkouts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// SaveWorkout stores a training entry; saving an already-logged date
// overwrites it.
func (h *WorkoutHandler) SaveWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req SaveWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.SaveWorkout(c.Request.Context(), userID, req.Date, req.Split, req.Exercises)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// UpdateExercises replaces the exercise list of the workout on the given date.
func (h *WorkoutHandler) UpdateExercises(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UpdateExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.UpdateWorkoutExercises(c.Request.Context(), userID, c.Param("date"), req.Exercises)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// LogRestDay stores a rest-day entry.
func (h *WorkoutHandler) LogRestDay(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req RestDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.LogRestDay(c.Request.Context(), userID, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes the entry on the given date.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, c.Param("date")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}

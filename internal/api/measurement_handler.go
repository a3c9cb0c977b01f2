package api

import (
	"net/http"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// MeasurementHandler exposes the body-measurement log endpoints.
type MeasurementHandler struct {
	measurementService service.MeasurementService
}

// NewMeasurementHandler creates a new MeasurementHandler.
func NewMeasurementHandler(measurementService service.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{measurementService: measurementService}
}

type SaveMeasurementRequest struct {
	Date   string   `json:"date"` // empty means today
	Weight float64  `json:"weight" binding:"required"`
	Chest  *float64 `json:"chest"`
	Waist  *float64 `json:"waist"`
	Hips   *float64 `json:"hips"`
	Biceps *float64 `json:"biceps"`
	Thighs *float64 `json:"thighs"`
}

func (h *MeasurementHandler) GetMeasurements(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	measurements, err := h.measurementService.GetMeasurements(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, measurements)
}

func (h *MeasurementHandler) SaveMeasurement(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req SaveMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	saved, err := h.measurementService.SaveMeasurement(c.Request.Context(), userID, domain.BodyMeasurement{
		Date:   req.Date,
		Weight: req.Weight,
		Chest:  req.Chest,
		Waist:  req.Waist,
		Hips:   req.Hips,
		Biceps: req.Biceps,
		Thighs: req.Thighs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *MeasurementHandler) DeleteMeasurement(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	if err := h.measurementService.DeleteMeasurement(c.Request.Context(), userID, c.Param("date")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "measurement deleted"})
}

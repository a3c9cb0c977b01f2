package api

import (
	"net/http"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SplitHandler exposes the split configuration endpoints.
type SplitHandler struct {
	splitService service.SplitService
}

// NewSplitHandler creates a new SplitHandler.
func NewSplitHandler(splitService service.SplitService) *SplitHandler {
	return &SplitHandler{splitService: splitService}
}

type AddSplitRequest struct {
	Name    string   `json:"name" binding:"required"`
	Color   string   `json:"color"`
	Muscles []string `json:"muscles"`
}

type RenameSplitRequest struct {
	NewName string `json:"newName" binding:"required"`
}

type SplitExercisesRequest struct {
	Exercises []string `json:"exercises" binding:"required"`
}

// GetConfig returns the user's split configuration, seeded on first load.
func (h *SplitHandler) GetConfig(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	cfg, err := h.splitService.GetConfig(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// SaveConfig merges a full configuration document in one write.
func (h *SplitHandler) SaveConfig(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var cfg domain.SplitConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.splitService.SaveConfig(c.Request.Context(), userID, cfg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *SplitHandler) AddSplit(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req AddSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	cfg, err := h.splitService.AddSplit(c.Request.Context(), userID, req.Name, req.Color, req.Muscles)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

// RenameSplit renames a split; the change cascades into every stored workout
// that references the old name.
func (h *SplitHandler) RenameSplit(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req RenameSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	cfg, err := h.splitService.RenameSplit(c.Request.Context(), userID, c.Param("name"), req.NewName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *SplitHandler) UpdateExercises(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req SplitExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	cfg, err := h.splitService.UpdateSplitExercises(c.Request.Context(), userID, c.Param("name"), req.Exercises)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *SplitHandler) DeleteSplit(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	cfg, err := h.splitService.DeleteSplit(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

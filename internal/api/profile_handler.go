package api

import (
	"net/http"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler exposes the user profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type SaveProfileRequest struct {
	Age             int     `json:"age"`
	Height          float64 `json:"height"`
	Weight          float64 `json:"weight"`
	RestDaysPerWeek int     `json:"restDaysPerWeek"`
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile := domain.UserProfile{
		Age:             req.Age,
		Height:          req.Height,
		Weight:          req.Weight,
		RestDaysPerWeek: req.RestDaysPerWeek,
	}
	if err := h.profileService.SaveProfile(c.Request.Context(), userID, profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

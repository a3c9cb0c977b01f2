package api

import (
	"net/http"
	"strconv"

	"arnold/tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// NoteHandler exposes the quick-note endpoints.
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

type AddNoteRequest struct {
	Date    string `json:"date" binding:"required"`
	Content string `json:"content" binding:"required"`
	Color   string `json:"color"`
}

func (h *NoteHandler) GetNotes(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	notes, err := h.noteService.GetNotes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) AddNote(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	note, err := h.noteService.AddNote(c.Request.Context(), userID, req.Date, req.Content, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Note ID must be numeric")
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), userID, c.Param("date"), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
}

package service

import (
	"context"
	"strings"
	"time"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/repository"
)

// NoteService owns the quick notes attached to calendar dates. A date may
// hold several notes; each is addressed by its date_id composite key.
type NoteService interface {
	GetNotes(ctx context.Context, userID string) ([]domain.QuickNote, error)
	AddNote(ctx context.Context, userID, date, content, color string) (*domain.QuickNote, error)
	DeleteNote(ctx context.Context, userID, date string, id int64) error
}

type noteService struct {
	noteRepo repository.NoteRepository
	now      func() time.Time
}

// NewNoteService creates a note service over the note store.
func NewNoteService(noteRepo repository.NoteRepository) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		now:      time.Now,
	}
}

func (s *noteService) GetNotes(ctx context.Context, userID string) ([]domain.QuickNote, error) {
	return s.noteRepo.GetAll(ctx, userID)
}

func (s *noteService) AddNote(ctx context.Context, userID, date, content, color string) (*domain.QuickNote, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyNote
	}
	if _, err := domain.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	now := s.now().UnixMilli()
	note := domain.QuickNote{
		ID:        now,
		UserID:    userID,
		Date:      date,
		Content:   content,
		CreatedAt: now,
		Color:     color,
	}
	if err := s.noteRepo.Upsert(ctx, userID, note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID, date string, id int64) error {
	return s.noteRepo.Delete(ctx, userID, date, id)
}

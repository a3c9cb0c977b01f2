package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNoteService(repo *fakeNoteRepo) *noteService {
	svc := NewNoteService(repo).(*noteService)
	base := testNow
	// Advance the clock per call so each note gets a distinct ID.
	svc.now = func() time.Time {
		base = base.Add(time.Millisecond)
		return base
	}
	return svc
}

func TestAddNote(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := newTestNoteService(repo)

	note, err := svc.AddNote(context.Background(), "u1", "2025-06-07", "  rodilla molesta  ", "red")
	require.NoError(t, err)
	assert.Equal(t, "rodilla molesta", note.Content)
	assert.Equal(t, note.ID, note.CreatedAt)

	_, err = svc.AddNote(context.Background(), "u1", "2025-06-07", "   ", "")
	assert.ErrorIs(t, err, ErrEmptyNote)

	_, err = svc.AddNote(context.Background(), "u1", "junio 7", "algo", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestMultipleNotesPerDate(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := newTestNoteService(repo)

	first, err := svc.AddNote(context.Background(), "u1", "2025-06-07", "primera", "")
	require.NoError(t, err)
	second, err := svc.AddNote(context.Background(), "u1", "2025-06-07", "segunda", "")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	all, _ := svc.GetNotes(context.Background(), "u1")
	assert.Len(t, all, 2)

	require.NoError(t, svc.DeleteNote(context.Background(), "u1", "2025-06-07", first.ID))
	all, _ = svc.GetNotes(context.Background(), "u1")
	assert.Len(t, all, 1)
}

package services

import (
	"testing"

	"github.com/northstar-app/northstar-backend/internal/dto"
	"github.com/northstar-app/northstar-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNote_DefaultTitle(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "note@example.com")
	svc := NewNoteService(db)

	note, err := svc.CreateNote(user.ID, dto.CreateNoteRequest{Content: "remember this"})
	require.NoError(t, err)
	assert.Equal(t, "Untitled Note", note.Title)
	assert.Equal(t, "remember this", note.Content)

	titled, err := svc.CreateNote(user.ID, dto.CreateNoteRequest{Title: "Ideas", Content: ""})
	require.NoError(t, err)
	assert.Equal(t, "Ideas", titled.Title)
}

func TestUpdateNote_PartialFieldsAndBlankTitle(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "noteupd@example.com")
	svc := NewNoteService(db)

	note, err := svc.CreateNote(user.ID, dto.CreateNoteRequest{Title: "Ideas", Content: "v1"})
	require.NoError(t, err)

	updated, err := svc.UpdateNote(user.ID, note.ID, dto.UpdateNoteRequest{Content: strPtr("v2")})
	require.NoError(t, err)
	assert.Equal(t, "Ideas", updated.Title)
	assert.Equal(t, "v2", updated.Content)

	// Blanking the title falls back to the placeholder.
	updated, err = svc.UpdateNote(user.ID, note.ID, dto.UpdateNoteRequest{Title: strPtr("   ")})
	require.NoError(t, err)
	assert.Equal(t, "Untitled Note", updated.Title)
}

func TestNoteOwnershipAndHardDelete(t *testing.T) {
	db := newTestDB(t)
	alice := newTestUser(t, db, "alice-n@example.com")
	bob := newTestUser(t, db, "bob-n@example.com")
	svc := NewNoteService(db)

	note, err := svc.CreateNote(alice.ID, dto.CreateNoteRequest{Title: "Secret"})
	require.NoError(t, err)

	_, err = svc.UpdateNote(bob.ID, note.ID, dto.UpdateNoteRequest{Content: strPtr("hacked")})
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.DeleteNote(bob.ID, note.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.DeleteNote(alice.ID, note.ID))

	// Hard delete: the row is gone, not hidden.
	var count int64
	db.Model(&models.Note{}).Where("id = ?", note.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	err = svc.DeleteNote(alice.ID, note.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestListNotes_OnlyOwn(t *testing.T) {
	db := newTestDB(t)
	alice := newTestUser(t, db, "alice-ln@example.com")
	bob := newTestUser(t, db, "bob-ln@example.com")
	svc := NewNoteService(db)

	_, err := svc.CreateNote(alice.ID, dto.CreateNoteRequest{Title: "A"})
	require.NoError(t, err)
	_, err = svc.CreateNote(bob.ID, dto.CreateNoteRequest{Title: "B"})
	require.NoError(t, err)

	notes, err := svc.ListNotes(alice.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "A", notes[0].Title)
}

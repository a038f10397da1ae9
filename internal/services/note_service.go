package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/northstar-app/northstar-backend/internal/dto"
	"github.com/northstar-app/northstar-backend/internal/models"
	"gorm.io/gorm"
)

const defaultNoteTitle = "Untitled Note"

type NoteService struct {
	db *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

func (s *NoteService) ListNotes(userID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	err := s.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteService) CreateNote(userID uuid.UUID, req dto.CreateNoteRequest) (*models.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = defaultNoteTitle
	}

	note := models.Note{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   title,
		Content: req.Content,
	}
	if err := s.db.Create(&note).Error; err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &note, nil
}

func (s *NoteService) getOwnedNote(userID, noteID uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := s.db.First(&note, "id = ?", noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	if note.UserID != userID {
		return nil, ErrNotOwner
	}
	return &note, nil
}

func (s *NoteService) UpdateNote(userID, noteID uuid.UUID, req dto.UpdateNoteRequest) (*models.Note, error) {
	note, err := s.getOwnedNote(userID, noteID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			title = defaultNoteTitle
		}
		note.Title = title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	if err := s.db.Save(note).Error; err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return note, nil
}

func (s *NoteService) DeleteNote(userID, noteID uuid.UUID) error {
	note, err := s.getOwnedNote(userID, noteID)
	if err != nil {
		return err
	}
	return s.db.Delete(note).Error
}

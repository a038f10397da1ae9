package models

import (
	"time"

	"github.com/google/uuid"
)

// Note is a persistent, undated scratchpad entry. Unlike habits it
// supports hard delete.
type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null;default:'Untitled Note'" json:"title"`
	Content   string    `gorm:"type:text;default:''" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

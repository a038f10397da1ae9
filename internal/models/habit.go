package models

import (
	"time"

	"github.com/google/uuid"
)

// Habit is never hard-deleted. Deactivating (Active=false) hides it from
// daily views while keeping its completion history addressable.
type Habit struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HabitCompletion records whether a habit was done on a day. The
// (user_id, habit_id, date) triple is the natural key; the unique index
// backs the ON CONFLICT upsert in the toggle path.
type HabitCompletion struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_completions_user_habit_date" json:"user_id"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_completions_user_habit_date" json:"habit_id"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_completions_user_habit_date;index" json:"date"`
	Completed bool      `gorm:"default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Habit     Habit     `gorm:"foreignKey:HabitID" json:"-"`
}

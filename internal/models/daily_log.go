package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyLog keys on (user_id, date). A date with no row is presented to
// callers as a default log (energy 5, empty notes), never as a 404.
type DailyLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_logs_user_date" json:"user_id"`
	Date        string    `gorm:"size:10;not null;uniqueIndex:idx_daily_logs_user_date" json:"date"`
	EnergyLevel int       `gorm:"default:5" json:"energy_level"`
	Notes       string    `gorm:"type:text;default:''" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MonthlyGoal holds one user's focus for a month. Month is an opaque
// sortable "YYYY-MM" string; the (user_id, month) pair is the natural key.
type MonthlyGoal struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_monthly_goals_user_month" json:"user_id"`
	Month     string         `gorm:"size:7;not null;uniqueIndex:idx_monthly_goals_user_month" json:"month"`
	Mantra    string         `gorm:"type:text;default:''" json:"mantra"`
	MainGoal  string         `gorm:"type:text;default:''" json:"main_goal"`
	Top3      datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"top3"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

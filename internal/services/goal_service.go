package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/northstar-app/northstar-backend/internal/dto"
	"github.com/northstar-app/northstar-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

func (s *GoalService) GetMonthlyGoal(userID uuid.UUID, month string) (*models.MonthlyGoal, error) {
	if !isValidMonth(month) {
		return nil, ErrInvalidMonth
	}

	var goal models.MonthlyGoal
	err := s.db.Where("user_id = ? AND month = ?", userID, month).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpsertMonthlyGoal writes the goal for (userID, month) as a single atomic
// INSERT ... ON CONFLICT DO UPDATE against the composite unique index, so
// concurrent calls for the same month can never produce two rows.
func (s *GoalService) UpsertMonthlyGoal(userID uuid.UUID, req dto.UpsertMonthlyGoalRequest) (*models.MonthlyGoal, error) {
	if !isValidMonth(req.Month) {
		return nil, ErrInvalidMonth
	}

	top3, err := normalizeTop3(req.Top3)
	if err != nil {
		return nil, err
	}

	goal := models.MonthlyGoal{
		ID:       uuid.New(),
		UserID:   userID,
		Month:    req.Month,
		Mantra:   req.Mantra,
		MainGoal: req.MainGoal,
		Top3:     top3,
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"mantra", "main_goal", "top3", "updated_at"}),
	}).Create(&goal).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert monthly goal: %w", err)
	}

	// Re-read so the caller sees the stored row, with the original id when
	// the write hit the conflict path.
	var stored models.MonthlyGoal
	if err := s.db.Where("user_id = ? AND month = ?", userID, req.Month).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// normalizeTop3 enforces a fixed-length-3 list, right-padded with empty
// strings. More than 3 entries is rejected rather than truncated.
func normalizeTop3(top3 []string) (datatypes.JSON, error) {
	if len(top3) > 3 {
		return nil, ErrTooManyTopGoals
	}
	padded := make([]string, 3)
	copy(padded, top3)

	b, err := json.Marshal(padded)
	if err != nil {
		return nil, fmt.Errorf("failed to encode top3: %w", err)
	}
	return datatypes.JSON(b), nil
}

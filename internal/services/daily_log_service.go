package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/northstar-app/northstar-backend/internal/dto"
	"github.com/northstar-app/northstar-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultEnergyLevel = 5

type DailyLogService struct {
	db *gorm.DB
}

func NewDailyLogService(db *gorm.DB) *DailyLogService {
	return &DailyLogService{db: db}
}

// GetDailyLog returns the log for (userID, date). A date that was never
// written is not an error: every date implicitly has a potential log, so
// absence synthesizes a default (energy 5, empty notes) instead of a 404.
func (s *DailyLogService) GetDailyLog(userID uuid.UUID, date string) (*models.DailyLog, error) {
	if !isValidDate(date) {
		return nil, ErrInvalidDate
	}

	var log models.DailyLog
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.DailyLog{
			UserID:      userID,
			Date:        date,
			EnergyLevel: defaultEnergyLevel,
			Notes:       "",
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// UpsertDailyLog writes the log for (userID, date) atomically via
// ON CONFLICT on the composite unique index. Validation runs before the
// write; an out-of-range energy level never touches the database.
func (s *DailyLogService) UpsertDailyLog(userID uuid.UUID, req dto.UpsertDailyLogRequest) (*models.DailyLog, error) {
	if !isValidDate(req.Date) {
		return nil, ErrInvalidDate
	}
	if req.EnergyLevel < 1 || req.EnergyLevel > 10 {
		return nil, ErrInvalidEnergyLevel
	}

	log := models.DailyLog{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        req.Date,
		EnergyLevel: req.EnergyLevel,
		Notes:       req.Notes,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"energy_level", "notes", "updated_at"}),
	}).Create(&log).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert daily log: %w", err)
	}

	var stored models.DailyLog
	if err := s.db.Where("user_id = ? AND date = ?", userID, req.Date).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

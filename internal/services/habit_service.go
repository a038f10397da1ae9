package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/northstar-app/northstar-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HabitService struct {
	db *gorm.DB
}

func NewHabitService(db *gorm.DB) *HabitService {
	return &HabitService{db: db}
}

// ListHabits returns the user's active habits, or all of them when
// includeInactive is set.
func (s *HabitService) ListHabits(userID uuid.UUID, includeInactive bool) ([]models.Habit, error) {
	query := s.db.Where("user_id = ?", userID)
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var habits []models.Habit
	if err := query.Order("created_at ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *HabitService) CreateHabit(userID uuid.UUID, title string) (*models.Habit, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	habit := models.Habit{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
		Active: true,
	}
	if err := s.db.Create(&habit).Error; err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return &habit, nil
}

func (s *HabitService) getOwnedHabit(userID, habitID uuid.UUID) (*models.Habit, error) {
	var habit models.Habit
	if err := s.db.First(&habit, "id = ?", habitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	if habit.UserID != userID {
		return nil, ErrNotOwner
	}
	return &habit, nil
}

// DeactivateHabit hides a habit from daily views without deleting it, so
// its completion history stays retrievable.
func (s *HabitService) DeactivateHabit(userID, habitID uuid.UUID) (*models.Habit, error) {
	habit, err := s.getOwnedHabit(userID, habitID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(habit).Update("active", false).Error; err != nil {
		return nil, fmt.Errorf("failed to deactivate habit: %w", err)
	}
	habit.Active = false
	return habit, nil
}

// ListCompletions returns the user's habit completions, restricted to the
// inclusive [start, end] date range only when both bounds are supplied.
func (s *HabitService) ListCompletions(userID uuid.UUID, start, end string) ([]models.HabitCompletion, error) {
	query := s.db.Where("user_id = ?", userID)
	if start != "" && end != "" {
		if !isValidDate(start) || !isValidDate(end) {
			return nil, ErrInvalidDate
		}
		query = query.Where("date BETWEEN ? AND ?", start, end)
	}

	var completions []models.HabitCompletion
	if err := query.Order("date ASC").Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// ToggleCompletion sets the completed flag for (userID, habitID, date). The
// row is created lazily on first toggle and updated in place afterwards via
// ON CONFLICT on the natural key, so the call is idempotent and safe under
// concurrent requests from multiple devices.
func (s *HabitService) ToggleCompletion(userID, habitID uuid.UUID, date string, completed bool) (bool, error) {
	if !isValidDate(date) {
		return false, ErrInvalidDate
	}

	if _, err := s.getOwnedHabit(userID, habitID); err != nil {
		return false, err
	}

	completion := models.HabitCompletion{
		ID:        uuid.New(),
		UserID:    userID,
		HabitID:   habitID,
		Date:      date,
		Completed: completed,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(&completion).Error
	if err != nil {
		return false, fmt.Errorf("failed to toggle habit completion: %w", err)
	}

	return completed, nil
}

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

type TodoService struct {
	db *gorm.DB
}

func NewTodoService(db *gorm.DB) *TodoService {
	return &TodoService{db: db}
}

// ListTodos returns the user's todos, filtered to one day when date is set.
func (s *TodoService) ListTodos(userID uuid.UUID, date string) ([]models.Todo, error) {
	query := s.db.Where("user_id = ?", userID)
	if date != "" {
		if !isValidDate(date) {
			return nil, ErrInvalidDate
		}
		query = query.Where("date = ?", date)
	}

	var todos []models.Todo
	if err := query.Order("created_at ASC").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *TodoService) CreateTodo(userID uuid.UUID, req dto.CreateTodoRequest) (*models.Todo, error) {
	if !isValidDate(req.Date) {
		return nil, ErrInvalidDate
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrTextRequired
	}

	todo := models.Todo{
		ID:     uuid.New(),
		UserID: userID,
		Date:   req.Date,
		Text:   text,
	}
	if err := s.db.Create(&todo).Error; err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return &todo, nil
}

func (s *TodoService) getOwnedTodo(userID, todoID uuid.UUID) (*models.Todo, error) {
	var todo models.Todo
	if err := s.db.First(&todo, "id = ?", todoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	if todo.UserID != userID {
		return nil, ErrNotOwner
	}
	return &todo, nil
}

// UpdateTodo applies a partial update after the ownership check passes.
func (s *TodoService) UpdateTodo(userID, todoID uuid.UUID, req dto.UpdateTodoRequest) (*models.Todo, error) {
	todo, err := s.getOwnedTodo(userID, todoID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		if !isValidDate(*req.Date) {
			return nil, ErrInvalidDate
		}
		todo.Date = *req.Date
	}
	if req.Text != nil {
		text := strings.TrimSpace(*req.Text)
		if text == "" {
			return nil, ErrTextRequired
		}
		todo.Text = text
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}

	if err := s.db.Save(todo).Error; err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	return todo, nil
}

func (s *TodoService) DeleteTodo(userID, todoID uuid.UUID) error {
	todo, err := s.getOwnedTodo(userID, todoID)
	if err != nil {
		return err
	}
	return s.db.Delete(todo).Error
}

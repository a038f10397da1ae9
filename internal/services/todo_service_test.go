package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/northstar-app/northstar-backend/internal/dto"
	"github.com/northstar-app/northstar-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateTodo_Validation(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "todo@example.com")
	svc := NewTodoService(db)

	_, err := svc.CreateTodo(user.ID, dto.CreateTodoRequest{Date: "2024-01-15", Text: "  "})
	assert.ErrorIs(t, err, ErrTextRequired)

	_, err = svc.CreateTodo(user.ID, dto.CreateTodoRequest{Date: "someday", Text: "Buy milk"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	todo, err := svc.CreateTodo(user.ID, dto.CreateTodoRequest{Date: "2024-01-15", Text: "Buy milk"})
	require.NoError(t, err)
	assert.False(t, todo.Completed)
}

func TestListTodos_DateFilter(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "todolist@example.com")
	svc := NewTodoService(db)

	_, err := svc.CreateTodo(user.ID, dto.CreateTodoRequest{Date: "2024-01-15", Text: "A"})
	require.NoError(t, err)
	_, err = svc.CreateTodo(user.ID, dto.CreateTodoRequest{Date: "2024-01-15", Text: "B"})
	require.NoError(t, err)
	_, err = svc.CreateTodo(user.ID, dto.CreateTodoRequest{Date: "2024-01-16", Text: "C"})
	require.NoError(t, err)

	day, err := svc.ListTodos(user.ID, "2024-01-15")
	require.NoError(t, err)
	assert.Len(t, day, 2)

	all, err := svc.ListTodos(user.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateTodo_PartialFields(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "todoupd@example.com")
	svc := NewTodoService(db)

	todo, err := svc.CreateTodo(user.ID, dto.CreateTodoRequest{Date: "2024-01-15", Text: "Draft report"})
	require.NoError(t, err)

	updated, err := svc.UpdateTodo(user.ID, todo.ID, dto.UpdateTodoRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Draft report", updated.Text)

	updated, err = svc.UpdateTodo(user.ID, todo.ID, dto.UpdateTodoRequest{Text: strPtr("Send report")})
	require.NoError(t, err)
	assert.Equal(t, "Send report", updated.Text)
	assert.True(t, updated.Completed)

	_, err = svc.UpdateTodo(user.ID, todo.ID, dto.UpdateTodoRequest{Text: strPtr("  ")})
	assert.ErrorIs(t, err, ErrTextRequired)
}

func TestTodoOwnership(t *testing.T) {
	db := newTestDB(t)
	alice := newTestUser(t, db, "alice-td@example.com")
	bob := newTestUser(t, db, "bob-td@example.com")
	svc := NewTodoService(db)

	todo, err := svc.CreateTodo(alice.ID, dto.CreateTodoRequest{Date: "2024-01-15", Text: "Private"})
	require.NoError(t, err)

	_, err = svc.UpdateTodo(bob.ID, todo.ID, dto.UpdateTodoRequest{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.DeleteTodo(bob.ID, todo.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// The record is untouched after the failed attempts.
	var stored models.Todo
	require.NoError(t, db.First(&stored, "id = ?", todo.ID).Error)
	assert.False(t, stored.Completed)

	err = svc.DeleteTodo(alice.ID, todo.ID)
	require.NoError(t, err)

	err = svc.DeleteTodo(alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

package services

import (
	"encoding/json"
	"testing"

	"github.com/northstar-app/northstar-backend/internal/dto"
	"github.com/northstar-app/northstar-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeTop3(t *testing.T, goal *models.MonthlyGoal) []string {
	t.Helper()
	var top3 []string
	require.NoError(t, json.Unmarshal(goal.Top3, &top3))
	return top3
}

func TestUpsertMonthlyGoal_CreatesThenOverwrites(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "goal@example.com")
	svc := NewGoalService(db)

	first, err := svc.UpsertMonthlyGoal(user.ID, dto.UpsertMonthlyGoalRequest{
		Month:    "2024-01",
		Mantra:   "Focus",
		MainGoal: "Ship v1",
		Top3:     []string{"A", "B", "C"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Focus", first.Mantra)

	second, err := svc.UpsertMonthlyGoal(user.ID, dto.UpsertMonthlyGoalRequest{
		Month:    "2024-01",
		Mantra:   "Focus",
		MainGoal: "Ship v1",
		Top3:     []string{"A", "X", "C"},
	})
	require.NoError(t, err)

	// Second call's content wins, id is stable, and the table holds one row.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{"A", "X", "C"}, decodeTop3(t, second))

	var count int64
	db.Model(&models.MonthlyGoal{}).
		Where("user_id = ? AND month = ?", user.ID, "2024-01").Count(&count)
	assert.Equal(t, int64(1), count)

	got, err := svc.GetMonthlyGoal(user.ID, "2024-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "X", "C"}, decodeTop3(t, got))
	assert.Equal(t, "Focus", got.Mantra)
}

func TestUpsertMonthlyGoal_PadsTop3(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "pad@example.com")
	svc := NewGoalService(db)

	goal, err := svc.UpsertMonthlyGoal(user.ID, dto.UpsertMonthlyGoalRequest{
		Month: "2024-02",
		Top3:  []string{"Only one"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Only one", "", ""}, decodeTop3(t, goal))
}

func TestUpsertMonthlyGoal_RejectsTooManyTop3(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "toomany@example.com")
	svc := NewGoalService(db)

	_, err := svc.UpsertMonthlyGoal(user.ID, dto.UpsertMonthlyGoalRequest{
		Month: "2024-02",
		Top3:  []string{"A", "B", "C", "D"},
	})
	assert.ErrorIs(t, err, ErrTooManyTopGoals)
}

func TestUpsertMonthlyGoal_RejectsMalformedMonth(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "badmonth@example.com")
	svc := NewGoalService(db)

	for _, month := range []string{"2024", "2024-13", "2024-1", "jan-2024", ""} {
		_, err := svc.UpsertMonthlyGoal(user.ID, dto.UpsertMonthlyGoalRequest{Month: month})
		assert.ErrorIs(t, err, ErrInvalidMonth, "month %q", month)
	}
}

func TestGetMonthlyGoal_NotFound(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "missing@example.com")
	svc := NewGoalService(db)

	_, err := svc.GetMonthlyGoal(user.ID, "2031-12")
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestMonthlyGoal_ScopedByUser(t *testing.T) {
	db := newTestDB(t)
	alice := newTestUser(t, db, "alice@example.com")
	bob := newTestUser(t, db, "bob@example.com")
	svc := NewGoalService(db)

	_, err := svc.UpsertMonthlyGoal(alice.ID, dto.UpsertMonthlyGoalRequest{
		Month: "2024-03", Mantra: "Alice's month",
	})
	require.NoError(t, err)

	_, err = svc.GetMonthlyGoal(bob.ID, "2024-03")
	assert.ErrorIs(t, err, ErrGoalNotFound)

	_, err = svc.UpsertMonthlyGoal(bob.ID, dto.UpsertMonthlyGoalRequest{
		Month: "2024-03", Mantra: "Bob's month",
	})
	require.NoError(t, err)

	var count int64
	db.Model(&models.MonthlyGoal{}).Where("month = ?", "2024-03").Count(&count)
	assert.Equal(t, int64(2), count)
}

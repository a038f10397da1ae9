package services

import (
	"testing"

	"github.com/northstar-app/northstar-backend/internal/dto"
	"github.com/northstar-app/northstar-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDailyLog_DefaultsWhenNeverWritten(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "log@example.com")
	svc := NewDailyLogService(db)

	log, err := svc.GetDailyLog(user.ID, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 5, log.EnergyLevel)
	assert.Equal(t, "", log.Notes)
	assert.Equal(t, "2024-01-15", log.Date)

	// The synthesized default is not persisted.
	var count int64
	db.Model(&models.DailyLog{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpsertDailyLog_CreatesThenUpdatesInPlace(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "log2@example.com")
	svc := NewDailyLogService(db)

	first, err := svc.UpsertDailyLog(user.ID, dto.UpsertDailyLogRequest{
		Date: "2024-01-15", EnergyLevel: 7, Notes: "good day",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, first.EnergyLevel)

	second, err := svc.UpsertDailyLog(user.ID, dto.UpsertDailyLogRequest{
		Date: "2024-01-15", EnergyLevel: 3, Notes: "crashed in the afternoon",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.EnergyLevel)

	var count int64
	db.Model(&models.DailyLog{}).
		Where("user_id = ? AND date = ?", user.ID, "2024-01-15").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpsertDailyLog_RejectsOutOfRangeEnergy(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "log3@example.com")
	svc := NewDailyLogService(db)

	for _, level := range []int{0, -1, 11, 15} {
		_, err := svc.UpsertDailyLog(user.ID, dto.UpsertDailyLogRequest{
			Date: "2024-01-15", EnergyLevel: level,
		})
		assert.ErrorIs(t, err, ErrInvalidEnergyLevel, "level %d", level)
	}

	// Failed validation never writes.
	var count int64
	db.Model(&models.DailyLog{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpsertDailyLog_RejectsMalformedDate(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "log4@example.com")
	svc := NewDailyLogService(db)

	_, err := svc.UpsertDailyLog(user.ID, dto.UpsertDailyLogRequest{
		Date: "2024-1-5", EnergyLevel: 5,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.GetDailyLog(user.ID, "15/01/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

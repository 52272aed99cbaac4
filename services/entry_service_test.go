package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

func seedEntry(t *testing.T, svc *EntryService) *models.FoodEntry {
	t.Helper()
	entry := &models.FoodEntry{
		UserID:               1,
		FoodName:             "pizza",
		EstimatedWeightGrams: 100,
		ActualWeightGrams:    100,
		Calories:             280,
		Protein:              11,
		OriginalAIFoodName:   "pizza",
		ConsumedAt:           time.Now(),
	}
	require.NoError(t, svc.Create(entry))
	return entry
}

func TestEntryUpdateCapturesFeedback(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEntryService(NewFeedbackService())
	entry := seedEntry(t, svc)

	updated, err := svc.Update(1, entry.ID, EntryUpdate{
		WeightGrams: ptrF(150),
		Calories:    ptrF(420),
	})
	require.NoError(t, err)
	assert.True(t, updated.UserCorrected)
	assert.Equal(t, 150.0, updated.ActualWeightGrams)
	assert.Equal(t, 420.0, updated.Calories)

	var fb models.UserFeedback
	require.NoError(t, db.First(&fb).Error)
	assert.Equal(t, "pizza", fb.AIFoodName)
	assert.Equal(t, 100.0, fb.AIWeightGrams)
	assert.Equal(t, 150.0, fb.CorrectedWeightGrams)
	assert.Equal(t, 420.0, fb.CorrectedCalories)
	assert.Contains(t, fb.CorrectionType, "portion")
	assert.Contains(t, fb.CorrectionType, "nutrition")
}

func TestEntryUpdateNoChange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEntryService(NewFeedbackService())
	entry := seedEntry(t, svc)

	updated, err := svc.Update(1, entry.ID, EntryUpdate{Calories: ptrF(280)})
	require.NoError(t, err)
	assert.False(t, updated.UserCorrected)

	var count int64
	db.Model(&models.UserFeedback{}).Count(&count)
	assert.Zero(t, count)
}

func TestEntryUpdateNameOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEntryService(NewFeedbackService())
	entry := seedEntry(t, svc)

	updated, err := svc.Update(1, entry.ID, EntryUpdate{FoodName: ptrS("margherita pizza")})
	require.NoError(t, err)
	assert.Equal(t, "margherita pizza", updated.FoodName)

	var fb models.UserFeedback
	require.NoError(t, db.First(&fb).Error)
	assert.Equal(t, "name", fb.CorrectionType)
}

func TestEntryUpdateFeedbackKeyedOnAILabel(t *testing.T) {
	db := setupTestDB(t)
	feedback := NewFeedbackService()
	svc := NewEntryService(feedback)

	// Learning renamed this entry at creation; the raw resolver label
	// lives in OriginalAIFoodName.
	entry := &models.FoodEntry{
		UserID:               1,
		FoodName:             "margherita pizza",
		EstimatedWeightGrams: 100,
		ActualWeightGrams:    100,
		Calories:             280,
		OriginalAIFoodName:   "pizza",
		ConsumedAt:           time.Now(),
	}
	require.NoError(t, svc.Create(entry))

	_, err := svc.Update(1, entry.ID, EntryUpdate{Calories: ptrF(350)})
	require.NoError(t, err)

	var fb models.UserFeedback
	require.NoError(t, db.First(&fb).Error)
	assert.Equal(t, "pizza", fb.AIFoodName)
	assert.Equal(t, "margherita pizza", fb.CorrectedFoodName)

	// Exact retrieval keys on the raw label the adjuster resolves with.
	rows, err := feedback.FindExact(1, "pizza")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 350.0, rows[0].CorrectedCalories)
}

func TestEntryOwnershipScoping(t *testing.T) {
	setupTestDB(t)
	svc := NewEntryService(NewFeedbackService())
	entry := seedEntry(t, svc)

	_, err := svc.Get(2, entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = svc.Update(2, entry.ID, EntryUpdate{Calories: ptrF(1)})
	assert.ErrorIs(t, err, ErrEntryNotFound)

	assert.ErrorIs(t, svc.Delete(2, entry.ID), ErrEntryNotFound)
	assert.NoError(t, svc.Delete(1, entry.ID))
	assert.ErrorIs(t, svc.Delete(1, entry.ID), ErrEntryNotFound)
}

func TestEntryForDay(t *testing.T) {
	setupTestDB(t)
	svc := NewEntryService(NewFeedbackService())

	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local)
	for _, consumed := range []time.Time{now, now.Add(-time.Hour), now.AddDate(0, 0, -1)} {
		require.NoError(t, svc.Create(&models.FoodEntry{
			UserID:     1,
			FoodName:   "rice",
			Calories:   195,
			ConsumedAt: consumed,
		}))
	}

	today, err := svc.ForDay(1, now)
	require.NoError(t, err)
	assert.Len(t, today, 2)

	yesterday, err := svc.ForDay(1, now.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Len(t, yesterday, 1)
}

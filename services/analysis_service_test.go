package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisLoggerRecord(t *testing.T) {
	db := setupTestDB(t)
	logger := NewAnalysisLogger()

	trace := &ResolutionTrace{DataSourceUsed: SourceUSDA}
	trace.step("USDA match %q scaled per-100g by %.2f", "Apple, raw", 1.5)
	trace.fallback("no enhanced database entry for %q", "apple")

	recognition := &RecognitionResult{
		PrimaryFood:     "apple",
		AllFoods:        []string{"apple", "fruit"},
		EstimatedWeight: 150,
		Confidence:      0.92,
		PortionSize:     "medium",
	}
	result := &NutritionRecord{
		FoodName:    "apple",
		WeightGrams: 150,
		Calories:    78,
		Protein:     0.5,
	}

	row, err := logger.Record(AnalysisContext{
		UserID:           1,
		FoodEntryID:      7,
		ImageURL:         "https://bucket/food-photos/1.jpg",
		Recognition:      recognition,
		ProcessingTimeMS: 120,
		Errors:           []string{"photo upload: timeout"},
	}, result, trace)
	require.NoError(t, err)
	require.NotZero(t, row.ID)

	var stored models.AnalysisLog
	require.NoError(t, db.First(&stored, row.ID).Error)

	assert.Equal(t, SourceUSDA, stored.DataSourceUsed)
	assert.Contains(t, stored.CalorieCalculationSteps, "USDA match")
	assert.Contains(t, stored.FallbackReasoning, "no enhanced database entry")
	assert.Contains(t, stored.IdentifiedFoods, "fruit")
	assert.Equal(t, "apple", stored.FinalFoodName)
	assert.Equal(t, 78.0, stored.FinalCalories)
	assert.Equal(t, 0.92, stored.AIConfidence)
	assert.Equal(t, 120, stored.ProcessingTimeMS)
	assert.Contains(t, stored.ErrorsEncountered, "timeout")
}

func TestAnalysisLoggerForUser(t *testing.T) {
	db := setupTestDB(t)
	logger := NewAnalysisLogger()

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.AnalysisLog{UserID: 1}).Error)
	}
	require.NoError(t, db.Create(&models.AnalysisLog{UserID: 2}).Error)

	logs, err := logger.ForUser(1, 2)
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	all, err := logger.ForUser(1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

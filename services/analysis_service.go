package services

import (
	"encoding/json"

	"backend/config"
	"backend/models"
)

// AnalysisLogger persists the provenance trail of each resolution so a user
// can later see which data source produced a number and why.
type AnalysisLogger struct{}

func NewAnalysisLogger() *AnalysisLogger { return &AnalysisLogger{} }

type AnalysisContext struct {
	UserID           uint
	FoodEntryID      uint
	ImageURL         string
	RawAIResponse    string
	Recognition      *RecognitionResult
	ProcessingTimeMS int
	Errors           []string
}

func (l *AnalysisLogger) Record(ac AnalysisContext, result *NutritionRecord, trace *ResolutionTrace) (*models.AnalysisLog, error) {
	log := models.AnalysisLog{
		UserID:      ac.UserID,
		FoodEntryID: ac.FoodEntryID,
		ImageURL:    ac.ImageURL,

		RawAIResponse:           ac.RawAIResponse,
		CalorieCalculationSteps: trace.Steps(),
		DataSourceUsed:          trace.DataSourceUsed,
		FallbackReasoning:       trace.Fallbacks(),

		ProcessingTimeMS: ac.ProcessingTimeMS,
	}

	if ac.Recognition != nil {
		if foods, err := json.Marshal(ac.Recognition.AllFoods); err == nil {
			log.IdentifiedFoods = string(foods)
		}
		log.WeightEstimationLogic = weightLogicSummary(ac.Recognition)
		log.AIConfidence = ac.Recognition.Confidence
	}

	if result != nil {
		log.FinalFoodName = result.FoodName
		log.FinalWeightGrams = result.WeightGrams
		log.FinalCalories = result.Calories
		log.FinalProtein = result.Protein
		log.FinalCarbs = result.Carbs
		log.FinalFat = result.Fat
	}

	if len(ac.Errors) > 0 {
		if encoded, err := json.Marshal(ac.Errors); err == nil {
			log.ErrorsEncountered = string(encoded)
		}
	}

	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (l *AnalysisLogger) ForUser(userID uint, limit int) ([]models.AnalysisLog, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	var logs []models.AnalysisLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func weightLogicSummary(rec *RecognitionResult) string {
	summary := map[string]any{
		"primary_food":     rec.PrimaryFood,
		"estimated_weight": rec.EstimatedWeight,
		"portion_size":     rec.PortionSize,
	}
	encoded, err := json.Marshal(summary)
	if err != nil {
		return ""
	}
	return string(encoded)
}

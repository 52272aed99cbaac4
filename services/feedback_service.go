package services

import (
	"math"
	"strings"

	"backend/config"
	"backend/models"
	"backend/utils"
)

// Thresholds below which an edit is considered noise rather than a
// correction worth learning from.
const (
	portionDeltaGrams = 5.0
	calorieDeltaKcal  = 10.0
	proteinDeltaGrams = 2.0
)

// FeedbackService is the correction store: it writes UserFeedback rows when a
// user fixes an AI estimate and serves the retrieval queries the learning
// adjuster runs. All queries are scoped to one user.
type FeedbackService struct{}

func NewFeedbackService() *FeedbackService {
	return &FeedbackService{}
}

// CaptureUserFeedback records a correction derived from an edited entry and
// its original AI analysis. The correction_type tag is derived from which
// fields moved past their noise thresholds; rows are immutable once written.
func (s *FeedbackService) CaptureUserFeedback(entry *models.FoodEntry, original *NutritionRecord) error {
	if entry == nil || original == nil || !entry.UserCorrected {
		return nil
	}

	var types []string
	if original.FoodName != entry.FoodName {
		types = append(types, "name")
	}
	if math.Abs(original.WeightGrams-entry.ActualWeightGrams) > portionDeltaGrams {
		types = append(types, "portion")
	}
	if math.Abs(original.Calories-entry.Calories) > calorieDeltaKcal ||
		math.Abs(original.Protein-entry.Protein) > proteinDeltaGrams {
		types = append(types, "nutrition")
	}

	correctionType := "all"
	if len(types) > 0 {
		correctionType = strings.Join(types, ",")
	}

	feedback := models.UserFeedback{
		UserID:               entry.UserID,
		AIFoodName:           original.FoodName,
		AIWeightGrams:        original.WeightGrams,
		AICalories:           original.Calories,
		AIProtein:            original.Protein,
		AICarbs:              original.Carbs,
		AIFat:                original.Fat,
		CorrectedFoodName:    entry.FoodName,
		CorrectedWeightGrams: entry.ActualWeightGrams,
		CorrectedCalories:    entry.Calories,
		CorrectedProtein:     entry.Protein,
		CorrectedCarbs:       entry.Carbs,
		CorrectedFat:         entry.Fat,
		FoodCategory:         utils.ClassifyFoodCategory(entry.FoodName),
		ConfidenceLevel:      entry.AIConfidenceScore,
		CorrectionType:       correctionType,
		LearnedFrom:          entry.ID,
	}

	return config.DB.Create(&feedback).Error
}

// FindExact returns the user's most recent corrections whose original AI
// label matches exactly, capped at 5.
func (s *FeedbackService) FindExact(userID uint, foodName string) ([]models.UserFeedback, error) {
	var out []models.UserFeedback
	err := config.DB.
		Where("user_id = ? AND ai_food_name = ?", userID, foodName).
		Order("created_at DESC, id DESC").
		Limit(5).
		Find(&out).Error
	return out, err
}

// FindByCategory returns the user's most recent corrections in a food
// category, capped at 10.
func (s *FeedbackService) FindByCategory(userID uint, category string) ([]models.UserFeedback, error) {
	var out []models.UserFeedback
	err := config.DB.
		Where("user_id = ? AND food_category = ?", userID, category).
		Order("created_at DESC, id DESC").
		Limit(10).
		Find(&out).Error
	return out, err
}

// FindAll returns every correction the user has made; the fuzzy matcher scans
// and ranks these itself.
func (s *FeedbackService) FindAll(userID uint) ([]models.UserFeedback, error) {
	var out []models.UserFeedback
	err := config.DB.
		Where("user_id = ?", userID).
		Find(&out).Error
	return out, err
}

package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("food entry not found")

// EntryService owns the FoodEntry lifecycle. Edits that move values away
// from the stored AI estimate are captured as feedback so later analyses
// of the same food can be adjusted.
type EntryService struct {
	feedback *FeedbackService
}

func NewEntryService(feedback *FeedbackService) *EntryService {
	return &EntryService{feedback: feedback}
}

func (s *EntryService) Create(entry *models.FoodEntry) error {
	if entry.ConsumedAt.IsZero() {
		entry.ConsumedAt = time.Now()
	}
	return config.DB.Create(entry).Error
}

func (s *EntryService) Get(userID, entryID uint) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := config.DB.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// EntryUpdate carries the editable fields of a logged entry. Nil pointers
// leave the stored value untouched.
type EntryUpdate struct {
	FoodName    *string  `json:"food_name"`
	WeightGrams *float64 `json:"weight_grams"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
}

// Update applies a user edit. When anything meaningfully changed versus the
// stored estimate, the entry is flagged user-corrected and a feedback row is
// written from the before/after pair.
func (s *EntryService) Update(userID, entryID uint, upd EntryUpdate) (*models.FoodEntry, error) {
	entry, err := s.Get(userID, entryID)
	if err != nil {
		return nil, err
	}

	// The feedback base is the stored AI snapshot, not the current row:
	// learning may have renamed the entry at creation, and the adjuster
	// keys exact lookups on the raw label it resolved.
	aiName := entry.OriginalAIFoodName
	if aiName == "" {
		aiName = entry.FoodName
	}
	original := NutritionRecord{
		FoodName:    aiName,
		WeightGrams: entry.EstimatedWeightGrams,
		Calories:    entry.Calories,
		Protein:     entry.Protein,
		Carbs:       entry.Carbs,
		Fat:         entry.Fat,
	}

	changed := false
	if upd.FoodName != nil && *upd.FoodName != entry.FoodName {
		entry.FoodName = *upd.FoodName
		changed = true
	}
	if upd.WeightGrams != nil && *upd.WeightGrams != entry.ActualWeightGrams {
		entry.ActualWeightGrams = *upd.WeightGrams
		changed = true
	}
	if upd.Calories != nil && *upd.Calories != entry.Calories {
		entry.Calories = *upd.Calories
		changed = true
	}
	if upd.Protein != nil && *upd.Protein != entry.Protein {
		entry.Protein = *upd.Protein
		changed = true
	}
	if upd.Carbs != nil && *upd.Carbs != entry.Carbs {
		entry.Carbs = *upd.Carbs
		changed = true
	}
	if upd.Fat != nil && *upd.Fat != entry.Fat {
		entry.Fat = *upd.Fat
		changed = true
	}
	if !changed {
		return entry, nil
	}

	entry.UserCorrected = true
	if err := config.DB.Save(entry).Error; err != nil {
		return nil, err
	}

	// A failed feedback write never blocks the edit itself.
	if s.feedback != nil {
		_ = s.feedback.CaptureUserFeedback(entry, &original)
	}
	return entry, nil
}

func (s *EntryService) Delete(userID, entryID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.FoodEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ForDay lists a user's entries consumed on the given calendar day, newest
// first.
func (s *EntryService) ForDay(userID uint, day time.Time) ([]models.FoodEntry, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var entries []models.FoodEntry
	err := config.DB.
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Order("consumed_at DESC").
		Find(&entries).Error
	return entries, err
}

// Recent lists the user's latest entries across all days.
func (s *EntryService) Recent(userID uint, limit int) ([]models.FoodEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var entries []models.FoodEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("consumed_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

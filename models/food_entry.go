package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodEntry is one logged food item, usually created from a photo analysis.
// The AI snapshot fields keep the original machine estimate so a later user
// edit can be compared against it when capturing feedback.
type FoodEntry struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	FoodName string `gorm:"type:varchar(200);not null"`

	EstimatedWeightGrams float64
	ActualWeightGrams    float64
	Calories             float64 `gorm:"not null"`
	Protein              float64
	Carbs                float64
	Fat                  float64
	Fiber                float64
	Sugar                float64
	Sodium               float64 // grams

	// AI analysis snapshot
	AIConfidenceScore  float64
	AIIdentifiedFoods  string `gorm:"type:text"` // JSON list of detected labels
	OriginalAIFoodName string `gorm:"type:varchar(200)"`
	UserCorrected      bool

	DataSource       string `gorm:"type:varchar(100)"`
	LearningApplied  string `gorm:"type:varchar(200)"`
	ImageURL         string `gorm:"type:varchar(500)"`

	ConsumedAt time.Time `gorm:"not null"`
}

package models

import (
	"gorm.io/gorm"
)

// AnalysisLog is the persisted provenance trail for one resolution: which data
// source won, the scaling arithmetic, and why any fallbacks fired. Written for
// audit and troubleshooting display, never read by the resolution pipeline.
type AnalysisLog struct {
	gorm.Model
	UserID      uint `gorm:"index;not null"`
	FoodEntryID uint
	ImageURL    string `gorm:"type:varchar(500)"`

	RawAIResponse           string `gorm:"type:text"`
	IdentifiedFoods         string `gorm:"type:text"` // JSON list of detected labels
	WeightEstimationLogic   string `gorm:"type:text"`
	CalorieCalculationSteps string `gorm:"type:text"`
	DataSourceUsed          string `gorm:"type:varchar(100)"`
	FallbackReasoning       string `gorm:"type:text"`

	FinalFoodName    string `gorm:"type:varchar(200)"`
	FinalWeightGrams float64
	FinalCalories    float64
	FinalProtein     float64
	FinalCarbs       float64
	FinalFat         float64

	AIConfidence      float64
	ProcessingTimeMS  int
	ErrorsEncountered string `gorm:"type:text"`
}

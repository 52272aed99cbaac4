package models

import (
	"gorm.io/gorm"
)

// UserFeedback records one user correction of an AI estimate. Rows are written
// once when an edited entry differs meaningfully from its original analysis and
// are immutable afterwards; the learning pipeline only ever reads the rows of
// the owning user.
type UserFeedback struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	// Original AI prediction
	AIFoodName    string `gorm:"type:varchar(200)"`
	AIWeightGrams float64
	AICalories    float64
	AIProtein     float64
	AICarbs       float64
	AIFat         float64

	// What the user changed it to
	CorrectedFoodName    string `gorm:"type:varchar(200)"`
	CorrectedWeightGrams float64
	CorrectedCalories    float64
	CorrectedProtein     float64
	CorrectedCarbs       float64
	CorrectedFat         float64

	// Context for retrieval
	FoodCategory    string  `gorm:"type:varchar(100);index"`
	ConfidenceLevel float64 // copy of the original estimate's confidence
	CorrectionType  string  `gorm:"type:varchar(50)"` // comma-joined: name,portion,nutrition or all
	LearnedFrom     uint    // FoodEntry ID the correction came from
}

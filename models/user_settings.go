package models

import (
	"gorm.io/gorm"
)

// Per-user nutrition goals. Defaults are created lazily on first read.
type UserSettings struct {
	gorm.Model
	UserID      uint `gorm:"uniqueIndex;not null"`
	CalorieGoal float64
	ProteinGoal float64
	CarbGoal    float64
	FatGoal     float64
}

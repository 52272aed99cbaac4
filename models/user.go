package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	FullName     string
	BodyWeightKg float64 // used for workout calorie-burn estimates
	HeightCm     float64
	Disabled     bool
}

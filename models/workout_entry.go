package models

import (
	"time"

	"gorm.io/gorm"
)

type WorkoutEntry struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null"`
	ActivityType    string    `gorm:"type:varchar(100);not null"` // "Running", "Jiu Jitsu", …
	Intensity       string    `gorm:"type:varchar(20);not null"`  // "light" | "moderate" | "high"
	DurationMinutes int       `gorm:"not null"`
	CaloriesBurned  float64   `gorm:"not null"`
	LoggedAt        time.Time `gorm:"not null"`
}

package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

const defaultBodyWeightKg = 70.0

var ErrWorkoutNotFound = errors.New("workout entry not found")

// WorkoutService logs exercise sessions with MET-based calorie burn
// estimates derived from the user's stored body weight.
type WorkoutService struct{}

func NewWorkoutService() *WorkoutService { return &WorkoutService{} }

func (s *WorkoutService) Log(userID uint, activityType, intensity string, durationMinutes int, loggedAt time.Time) (*models.WorkoutEntry, error) {
	if durationMinutes <= 0 {
		return nil, errors.New("duration must be positive")
	}
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	weight := defaultBodyWeightKg
	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil && user.BodyWeightKg > 0 {
		weight = user.BodyWeightKg
	}

	entry := models.WorkoutEntry{
		UserID:          userID,
		ActivityType:    activityType,
		Intensity:       intensity,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  utils.CalculateCaloriesBurned(activityType, intensity, durationMinutes, weight),
		LoggedAt:        loggedAt,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *WorkoutService) ForDay(userID uint, day time.Time) ([]models.WorkoutEntry, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var workouts []models.WorkoutEntry
	err := config.DB.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at DESC").
		Find(&workouts).Error
	return workouts, err
}

func (s *WorkoutService) Delete(userID, workoutID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", workoutID, userID).Delete(&models.WorkoutEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

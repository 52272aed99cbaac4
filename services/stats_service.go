package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

const (
	defaultCalorieGoal = 2000.0
	defaultProteinGoal = 150.0
	defaultCarbGoal    = 250.0
	defaultFatGoal     = 65.0
)

// StatsService aggregates entries and workouts into daily summaries.
type StatsService struct{}

func NewStatsService() *StatsService { return &StatsService{} }

type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

type DayStats struct {
	Date           string      `json:"date"`
	Consumed       MacroTotals `json:"consumed"`
	CaloriesBurned float64     `json:"calories_burned"`
	NetCalories    float64     `json:"net_calories"`
	Goals          MacroTotals `json:"goals"`
	CaloriesLeft   float64     `json:"calories_left"`
	EntryCount     int         `json:"entry_count"`
	WorkoutCount   int         `json:"workout_count"`
}

// ForDay builds the full summary for one calendar day: macro totals from
// food entries, burn from workouts, and remaining calories against the
// user's goals. Net calories are consumed minus burned.
func (s *StatsService) ForDay(userID uint, day time.Time) (*DayStats, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var entries []models.FoodEntry
	if err := config.DB.
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	var workouts []models.WorkoutEntry
	if err := config.DB.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Find(&workouts).Error; err != nil {
		return nil, err
	}

	goals, err := s.GoalsFor(userID)
	if err != nil {
		return nil, err
	}

	stats := DayStats{
		Date:         start.Format("2006-01-02"),
		Goals:        goals,
		EntryCount:   len(entries),
		WorkoutCount: len(workouts),
	}
	for _, e := range entries {
		stats.Consumed.Calories += e.Calories
		stats.Consumed.Protein += e.Protein
		stats.Consumed.Carbs += e.Carbs
		stats.Consumed.Fat += e.Fat
		stats.Consumed.Fiber += e.Fiber
		stats.Consumed.Sugar += e.Sugar
		stats.Consumed.Sodium += e.Sodium
	}
	for _, w := range workouts {
		stats.CaloriesBurned += w.CaloriesBurned
	}

	stats.Consumed.Calories = round1(stats.Consumed.Calories)
	stats.Consumed.Protein = round1(stats.Consumed.Protein)
	stats.Consumed.Carbs = round1(stats.Consumed.Carbs)
	stats.Consumed.Fat = round1(stats.Consumed.Fat)
	stats.Consumed.Fiber = round1(stats.Consumed.Fiber)
	stats.Consumed.Sugar = round1(stats.Consumed.Sugar)
	stats.Consumed.Sodium = round3(stats.Consumed.Sodium)
	stats.CaloriesBurned = round1(stats.CaloriesBurned)
	stats.NetCalories = round1(stats.Consumed.Calories - stats.CaloriesBurned)
	stats.CaloriesLeft = round1(goals.Calories - stats.NetCalories)
	return &stats, nil
}

// History returns per-day summaries for the last n days, oldest first.
func (s *StatsService) History(userID uint, days int) ([]DayStats, error) {
	if days <= 0 || days > 90 {
		days = 7
	}
	out := make([]DayStats, 0, days)
	today := time.Now()
	for i := days - 1; i >= 0; i-- {
		day, err := s.ForDay(userID, today.AddDate(0, 0, -i))
		if err != nil {
			return nil, err
		}
		out = append(out, *day)
	}
	return out, nil
}

// GoalsFor loads the user's goals, creating a defaults row on first access.
func (s *StatsService) GoalsFor(userID uint) (MacroTotals, error) {
	var settings models.UserSettings
	err := config.DB.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.UserSettings{
			UserID:      userID,
			CalorieGoal: defaultCalorieGoal,
			ProteinGoal: defaultProteinGoal,
			CarbGoal:    defaultCarbGoal,
			FatGoal:     defaultFatGoal,
		}
		if err := config.DB.Create(&settings).Error; err != nil {
			return MacroTotals{}, err
		}
	} else if err != nil {
		return MacroTotals{}, err
	}
	return MacroTotals{
		Calories: settings.CalorieGoal,
		Protein:  settings.ProteinGoal,
		Carbs:    settings.CarbGoal,
		Fat:      settings.FatGoal,
	}, nil
}

// UpdateGoals overwrites the user's goal row, creating it when missing.
func (s *StatsService) UpdateGoals(userID uint, goals MacroTotals) error {
	var settings models.UserSettings
	err := config.DB.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.UserSettings{UserID: userID}
	} else if err != nil {
		return err
	}
	settings.CalorieGoal = goals.Calories
	settings.ProteinGoal = goals.Protein
	settings.CarbGoal = goals.Carbs
	settings.FatGoal = goals.Fat
	return config.DB.Save(&settings).Error
}

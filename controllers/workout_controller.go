package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type WorkoutInput struct {
	ActivityType    string `json:"activity_type" binding:"required"`
	Intensity       string `json:"intensity" binding:"required,oneof=light moderate high"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	LoggedAt        string `json:"logged_at"` // RFC3339, defaults to now
}

func LogWorkout(c *gin.Context) {
	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	var loggedAt time.Time
	if input.LoggedAt != "" {
		t, err := time.Parse(time.RFC3339, input.LoggedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid logged_at, expected RFC3339"})
			return
		}
		loggedAt = t
	}

	entry, err := services.NewWorkoutService().Log(userID, input.ActivityType, input.Intensity, input.DurationMinutes, loggedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func ListWorkouts(c *gin.Context) {
	userID := c.GetUint("userID")

	day, err := dayQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	workouts, err := services.NewWorkoutService().ForDay(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

func DeleteWorkout(c *gin.Context) {
	userID := c.GetUint("userID")
	workoutID, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout id"})
		return
	}

	err = services.NewWorkoutService().Delete(userID, workoutID)
	if errors.Is(err, services.ErrWorkoutNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}

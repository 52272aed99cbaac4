package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func TodayStats(c *gin.Context) {
	userID := c.GetUint("userID")

	day, err := dayQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	stats, err := services.NewStatsService().ForDay(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func StatsHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	history, err := services.NewStatsService().History(userID, intQuery(c, "days", 7))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": history})
}

func GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goals, err := services.NewStatsService().GoalsFor(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

type GoalsInput struct {
	Calories float64 `json:"calories" binding:"required,gt=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
}

func UpdateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var input GoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := services.NewStatsService().UpdateGoals(userID, services.MacroTotals{
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goals updated"})
}

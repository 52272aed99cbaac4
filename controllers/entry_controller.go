package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ManualEntryInput struct {
	FoodName    string  `json:"food_name" binding:"required"`
	WeightGrams float64 `json:"weight_grams" binding:"required,gt=0"`
	Calories    float64 `json:"calories" binding:"required,gte=0"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ConsumedAt  string  `json:"consumed_at"`
}

func CreateEntry(c *gin.Context) {
	var input ManualEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	consumedAt := time.Now()
	if input.ConsumedAt != "" {
		if t, err := time.Parse(time.RFC3339, input.ConsumedAt); err == nil {
			consumedAt = t
		}
	}

	entry := models.FoodEntry{
		UserID:            userID,
		FoodName:          input.FoodName,
		ActualWeightGrams: input.WeightGrams,
		Calories:          input.Calories,
		Protein:           input.Protein,
		Carbs:             input.Carbs,
		Fat:               input.Fat,
		DataSource:        "manual",
		ConsumedAt:        consumedAt,
	}
	if err := services.NewEntryService(services.NewFeedbackService()).Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func ListEntries(c *gin.Context) {
	userID := c.GetUint("userID")
	svc := services.NewEntryService(services.NewFeedbackService())

	if c.Query("date") != "" {
		day, err := dayQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		entries, err := svc.ForDay(userID, day)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
		return
	}

	entries, err := svc.Recent(userID, intQuery(c, "limit", 20))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func GetEntry(c *gin.Context) {
	userID := c.GetUint("userID")
	entryID, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	entry, err := services.NewEntryService(services.NewFeedbackService()).Get(userID, entryID)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateEntry applies a user edit. Edits that differ from the stored AI
// estimate are captured as corrections for the learning adjuster.
func UpdateEntry(c *gin.Context) {
	userID := c.GetUint("userID")
	entryID, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var upd services.EntryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.NewEntryService(services.NewFeedbackService()).Update(userID, entryID, upd)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeleteEntry(c *gin.Context) {
	userID := c.GetUint("userID")
	entryID, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	err = services.NewEntryService(services.NewFeedbackService()).Delete(userID, entryID)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

package controllers

import (
	"net/http"
	"time"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AnalyzePhotoInput struct {
	ImageBase64 string  `json:"image_base64" binding:"required"`
	WeightGrams float64 `json:"weight_grams"` // optional user override
	ConsumedAt  string  `json:"consumed_at"`  // RFC3339, defaults to now
}

// AnalyzeFoodPhoto runs the full photo pipeline: upload, label detection,
// nutrition resolution, correction-history adjustment, then persists the
// entry and its provenance log.
func AnalyzeFoodPhoto(c *gin.Context) {
	var input AnalyzePhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")
	started := time.Now()

	var pipelineErrors []string

	imageURL, err := utils.UploadFoodPhoto(input.ImageBase64, userID)
	if err != nil {
		// Analysis proceeds without a stored photo.
		pipelineErrors = append(pipelineErrors, "photo upload: "+err.Error())
	}

	rek, err := services.NewRekognitionService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	recognition, err := rek.AnalyzeFoodPhoto(c.Request.Context(), input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if input.WeightGrams > 0 {
		recognition.EstimatedWeight = input.WeightGrams
	}

	calories := services.NewCalorieService(
		services.NewNutritionRegistry(),
		services.NewUSDAService(),
		services.NewWebSearchService(),
	)
	record, trace, err := calories.Resolve(*recognition)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	feedback := services.NewFeedbackService()
	adjusted := services.NewLearningService(feedback).Adjust(record, userID)

	consumedAt := time.Now()
	if input.ConsumedAt != "" {
		if t, err := time.Parse(time.RFC3339, input.ConsumedAt); err == nil {
			consumedAt = t
		}
	}

	entry := models.FoodEntry{
		UserID:               userID,
		FoodName:             adjusted.FoodName,
		EstimatedWeightGrams: recognition.EstimatedWeight,
		ActualWeightGrams:    adjusted.WeightGrams,
		Calories:             adjusted.Calories,
		Protein:              adjusted.Protein,
		Carbs:                adjusted.Carbs,
		Fat:                  adjusted.Fat,
		Fiber:                adjusted.Fiber,
		Sugar:                adjusted.Sugar,
		Sodium:               adjusted.Sodium,
		AIConfidenceScore:    recognition.Confidence,
		AIIdentifiedFoods:    utils.ToJSON(recognition.AllFoods),
		OriginalAIFoodName:   recognition.PrimaryFood,
		DataSource:           adjusted.DataSource,
		LearningApplied:      adjusted.LearningApplied,
		ImageURL:             imageURL,
		ConsumedAt:           consumedAt,
	}
	if err := services.NewEntryService(feedback).Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger := services.NewAnalysisLogger()
	if _, err := logger.Record(services.AnalysisContext{
		UserID:           userID,
		FoodEntryID:      entry.ID,
		ImageURL:         imageURL,
		RawAIResponse:    recognition.Description,
		Recognition:      recognition,
		ProcessingTimeMS: int(time.Since(started).Milliseconds()),
		Errors:           pipelineErrors,
	}, adjusted, trace); err != nil {
		pipelineErrors = append(pipelineErrors, "analysis log: "+err.Error())
	}

	c.JSON(http.StatusCreated, gin.H{
		"entry":             entry,
		"nutrition":         adjusted,
		"data_source":       trace.DataSourceUsed,
		"calculation_steps": trace.CalculationSteps,
		"fallbacks":         trace.FallbackReasoning,
		"warnings":          pipelineErrors,
	})
}

type ResolveInput struct {
	FoodName    string  `json:"food_name" binding:"required"`
	WeightGrams float64 `json:"weight_grams" binding:"required,gt=0"`
}

// ResolveNutrition looks up nutrition for a named food without persisting
// anything. Used by the manual-entry form.
func ResolveNutrition(c *gin.Context) {
	var input ResolveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	calories := services.NewCalorieService(
		services.NewNutritionRegistry(),
		services.NewUSDAService(),
		services.NewWebSearchService(),
	)
	record, trace, err := calories.Resolve(services.RecognitionResult{
		PrimaryFood:     input.FoodName,
		AllFoods:        []string{input.FoodName},
		EstimatedWeight: input.WeightGrams,
		Confidence:      1.0,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	adjusted := services.NewLearningService(services.NewFeedbackService()).Adjust(record, userID)

	c.JSON(http.StatusOK, gin.H{
		"nutrition":         adjusted,
		"data_source":       trace.DataSourceUsed,
		"calculation_steps": trace.CalculationSteps,
		"fallbacks":         trace.FallbackReasoning,
	})
}

// AnalysisHistory lists the user's recent resolution provenance logs.
func AnalysisHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	logs, err := services.NewAnalysisLogger().ForUser(userID, intQuery(c, "limit", 20))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

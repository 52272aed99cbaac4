package services

import "math"

// Data source tags carried on every resolved record. Consumers switch on
// these instead of probing optional fields.
const (
	SourceEnhancedDB      = "enhanced_database"
	SourceWebSearch       = "web_search_direct"
	SourceUSDA            = "usda_api"
	SourceLocalDB         = "local_database"
	SourceCategoryMatch   = "category_match"
	SourceMultiFood       = "multi_food_combined"
	SourceFallback        = "fallback_estimate"
)

// NutritionRecord is the one shape every source normalizes into. All macro
// gram values are expressed for WeightGrams; per-100g data is scaled before a
// record leaves the producing source.
type NutritionRecord struct {
	FoodName    string  `json:"food_name"`
	WeightGrams float64 `json:"weight_grams"`

	Calories float64 `json:"total_calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"` // grams

	DataSource string  `json:"data_source"`
	Confidence float64 `json:"confidence_score"`

	Brand              string `json:"brand,omitempty"`
	ServingDescription string `json:"serving_description,omitempty"`
	Source             string `json:"source,omitempty"`

	LearningApplied string `json:"learning_applied,omitempty"`
}

// RecognitionResult is the input contract from the image-recognition
// collaborator: a primary label, candidate labels, a weight estimate and the
// recognizer's own confidence.
type RecognitionResult struct {
	PrimaryFood     string   `json:"primary_food"`
	AllFoods        []string `json:"all_foods"`
	EstimatedWeight float64  `json:"estimated_weight"`
	Confidence      float64  `json:"confidence"`
	PortionSize     string   `json:"portion_size,omitempty"`
	Description     string   `json:"description,omitempty"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// roundRecord applies the output rounding contract: one decimal everywhere,
// except sodium which keeps three decimals for government/web sources because
// the values are tiny after the mg→g conversion.
func roundRecord(r *NutritionRecord) {
	r.Calories = round1(r.Calories)
	r.Protein = round1(r.Protein)
	r.Carbs = round1(r.Carbs)
	r.Fat = round1(r.Fat)
	r.Fiber = round1(r.Fiber)
	r.Sugar = round1(r.Sugar)
	switch r.DataSource {
	case SourceUSDA, SourceWebSearch:
		r.Sodium = round3(r.Sodium)
	default:
		r.Sodium = round1(r.Sodium)
	}
}

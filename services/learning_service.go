package services

import (
	"log"
	"math"
	"sort"
	"strings"

	"backend/models"
	"backend/utils"
)

// CorrectionSource is the slice of the feedback store the adjuster needs.
type CorrectionSource interface {
	FindExact(userID uint, foodName string) ([]models.UserFeedback, error)
	FindByCategory(userID uint, category string) ([]models.UserFeedback, error)
	FindAll(userID uint) ([]models.UserFeedback, error)
}

// Adjustment bounds. Ratios outside these ranges are treated as outliers or
// data-entry mistakes rather than real portion/density signals.
const (
	portionRatioMin = 0.3
	portionRatioMax = 5.0

	categoryRatioMin = 0.3
	categoryRatioMax = 3.0

	// relative-change thresholds that classify a correction
	portionChangeThreshold = 0.2
	calorieChangeThreshold = 0.5

	// min deviation of the category mean from 1.0 before it is applied
	categoryDeviationThreshold = 0.1

	minCategoryCorrections = 3
	maxFuzzyCandidates     = 5
)

// LearningService personalizes resolver output using the user's correction
// history. Adjust is idempotent for a fixed history and never fails: any
// retrieval error just skips that adjustment step.
type LearningService struct {
	store CorrectionSource
}

func NewLearningService(store CorrectionSource) *LearningService {
	return &LearningService{store: store}
}

// Adjust returns a copy of raw with the user's learned corrections applied.
// Provenance markers for every applied step accumulate in LearningApplied.
func (s *LearningService) Adjust(raw *NutritionRecord, userID uint) *NutritionRecord {
	if raw == nil {
		return nil
	}
	out := *raw

	category := utils.ClassifyFoodCategory(out.FoodName)

	candidates, provenance := s.findCandidates(userID, out.FoodName)

	var markers []string
	if len(candidates) > 0 {
		markers = applyLatestCorrection(&out, candidates[0])
	}
	if len(markers) > 0 {
		out.LearningApplied = provenance + "_" + strings.Join(markers, "_")
	}

	// Category aggregate runs independently, compounding on top of any
	// single-correction adjustment.
	if s.applyCategoryAdjustment(&out, userID, category) {
		if out.LearningApplied != "" {
			out.LearningApplied += "_category_calorie_adjustment"
		} else {
			out.LearningApplied = "category_calorie_adjustment"
		}
	}

	if out.LearningApplied != "" {
		out.Calories = round1(out.Calories)
		out.WeightGrams = round1(out.WeightGrams)
		log.Printf("learning: user %d %q adjustments: %s", userID, raw.FoodName, out.LearningApplied)
	}
	return &out
}

// findCandidates prefers exact-label corrections and falls back to fuzzy
// token-overlap matches. The returned tag records which pool was used.
func (s *LearningService) findCandidates(userID uint, foodName string) ([]models.UserFeedback, string) {
	exact, err := s.store.FindExact(userID, foodName)
	if err == nil && len(exact) > 0 {
		return exact, "exact"
	}
	if err != nil {
		log.Printf("learning: exact lookup failed: %v", err)
	}

	all, err := s.store.FindAll(userID)
	if err != nil {
		log.Printf("learning: history scan failed: %v", err)
		return nil, ""
	}

	queryWords := tokenSet(strings.ToLower(foodName))
	var fuzzy []models.UserFeedback
	for _, c := range all {
		if c.AIFoodName == "" {
			continue
		}
		common := intersect(queryWords, tokenSet(strings.ToLower(c.AIFoodName)))
		if len(common) >= 2 {
			fuzzy = append(fuzzy, c)
		}
	}
	if len(fuzzy) == 0 {
		return nil, ""
	}

	sort.SliceStable(fuzzy, func(i, j int) bool {
		return correctionPriority(fuzzy[i]) > correctionPriority(fuzzy[j])
	})
	if len(fuzzy) > maxFuzzyCandidates {
		fuzzy = fuzzy[:maxFuzzyCandidates]
	}
	return fuzzy, "fuzzy"
}

// correctionPriority ranks fuzzy candidates: significant calorie changes
// first, then significant portion changes, recency as tiebreaker.
func correctionPriority(c models.UserFeedback) float64 {
	score := 0.0
	if c.AICalories > 0 && math.Abs(c.CorrectedCalories-c.AICalories)/c.AICalories > calorieChangeThreshold {
		score += 100
	}
	if c.AIWeightGrams > 0 && math.Abs(c.CorrectedWeightGrams-c.AIWeightGrams)/c.AIWeightGrams > portionChangeThreshold {
		score += 50
	}
	score += float64(c.CreatedAt.Unix()) / 1e6
	return score
}

// applyLatestCorrection applies the single most relevant correction: name
// overwrite, then either a portion ratio (weight and calories) or a calorie
// density ratio (calories only). Degenerate denominators skip the step.
func applyLatestCorrection(out *NutritionRecord, c models.UserFeedback) []string {
	var markers []string

	if c.CorrectedFoodName != "" && c.CorrectedFoodName != c.AIFoodName {
		out.FoodName = c.CorrectedFoodName
		markers = append(markers, "name_correction")
	}

	portionChange := c.AIWeightGrams > 0 &&
		math.Abs(c.CorrectedWeightGrams-c.AIWeightGrams)/c.AIWeightGrams > portionChangeThreshold
	calorieChange := c.AICalories > 0 &&
		math.Abs(c.CorrectedCalories-c.AICalories)/c.AICalories > calorieChangeThreshold

	if portionChange {
		ratio := c.CorrectedWeightGrams / c.AIWeightGrams
		if ratio >= portionRatioMin && ratio <= portionRatioMax {
			out.WeightGrams *= ratio
			out.Calories *= ratio
			markers = append(markers, "portion_adjustment")
		}
	} else if calorieChange {
		out.Calories *= c.CorrectedCalories / c.AICalories
		markers = append(markers, "calorie_correction")
	}

	return markers
}

// applyCategoryAdjustment multiplies calories by the mean corrected/original
// calorie ratio over the user's recent category corrections. It needs at
// least minCategoryCorrections records, ignores outlier ratios, and only
// fires when the mean moves meaningfully away from 1.0.
func (s *LearningService) applyCategoryAdjustment(out *NutritionRecord, userID uint, category string) bool {
	similar, err := s.store.FindByCategory(userID, category)
	if err != nil {
		log.Printf("learning: category lookup failed: %v", err)
		return false
	}
	if len(similar) < minCategoryCorrections {
		return false
	}

	var ratios []float64
	for _, c := range similar {
		if c.AICalories <= 0 || c.CorrectedCalories <= 0 {
			continue
		}
		ratio := c.CorrectedCalories / c.AICalories
		if ratio >= categoryRatioMin && ratio <= categoryRatioMax {
			ratios = append(ratios, ratio)
		}
	}
	if len(ratios) == 0 {
		return false
	}

	sum := 0.0
	for _, r := range ratios {
		sum += r
	}
	avg := sum / float64(len(ratios))
	if math.Abs(avg-1.0) <= categoryDeviationThreshold {
		return false
	}

	out.Calories *= avg
	return true
}

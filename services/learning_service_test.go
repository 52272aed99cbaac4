package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

// stubCorrections serves canned correction history without a database.
type stubCorrections struct {
	exact    []models.UserFeedback
	category []models.UserFeedback
	all      []models.UserFeedback
	err      error
}

func (s *stubCorrections) FindExact(userID uint, foodName string) ([]models.UserFeedback, error) {
	return s.exact, s.err
}

func (s *stubCorrections) FindByCategory(userID uint, category string) ([]models.UserFeedback, error) {
	return s.category, s.err
}

func (s *stubCorrections) FindAll(userID uint) ([]models.UserFeedback, error) {
	return s.all, s.err
}

func feedbackAt(t time.Time) gorm.Model {
	return gorm.Model{CreatedAt: t}
}

func TestAdjustNoHistory(t *testing.T) {
	svc := NewLearningService(&stubCorrections{})
	raw := &NutritionRecord{FoodName: "pizza", WeightGrams: 100, Calories: 280}

	out := svc.Adjust(raw, 1)
	require.NotNil(t, out)
	assert.Equal(t, 280.0, out.Calories)
	assert.Equal(t, 100.0, out.WeightGrams)
	assert.Empty(t, out.LearningApplied)
}

func TestAdjustPortionCorrection(t *testing.T) {
	store := &stubCorrections{
		exact: []models.UserFeedback{{
			Model:                feedbackAt(time.Now()),
			AIFoodName:           "pizza",
			CorrectedFoodName:    "pizza",
			AIWeightGrams:        100,
			CorrectedWeightGrams: 150,
			AICalories:           280,
			CorrectedCalories:    280,
		}},
	}
	svc := NewLearningService(store)

	raw := &NutritionRecord{FoodName: "pizza", WeightGrams: 100, Calories: 200}
	out := svc.Adjust(raw, 1)

	// portion ratio 1.5 scales weight and calories together
	assert.Equal(t, 150.0, out.WeightGrams)
	assert.Equal(t, 300.0, out.Calories)
	assert.Equal(t, "exact_portion_adjustment", out.LearningApplied)

	// input record untouched
	assert.Equal(t, 100.0, raw.WeightGrams)
	assert.Equal(t, 200.0, raw.Calories)
}

func TestAdjustPortionRatioClamped(t *testing.T) {
	store := &stubCorrections{
		exact: []models.UserFeedback{{
			Model:                feedbackAt(time.Now()),
			AIFoodName:           "pizza",
			AIWeightGrams:        100,
			CorrectedWeightGrams: 900, // ratio 9.0, outside [0.3, 5.0]
			AICalories:           280,
			CorrectedCalories:    280,
		}},
	}
	svc := NewLearningService(store)

	out := svc.Adjust(&NutritionRecord{FoodName: "pizza", WeightGrams: 100, Calories: 200}, 1)
	assert.Equal(t, 100.0, out.WeightGrams)
	assert.Equal(t, 200.0, out.Calories)
	assert.Empty(t, out.LearningApplied)
}

func TestAdjustCalorieCorrection(t *testing.T) {
	store := &stubCorrections{
		exact: []models.UserFeedback{{
			Model:                feedbackAt(time.Now()),
			AIFoodName:           "pizza",
			AIWeightGrams:        100,
			CorrectedWeightGrams: 105, // 5%, below portion threshold
			AICalories:           200,
			CorrectedCalories:    400, // density doubled
		}},
	}
	svc := NewLearningService(store)

	out := svc.Adjust(&NutritionRecord{FoodName: "pizza", WeightGrams: 100, Calories: 200}, 1)

	// calorie correction scales calories only
	assert.Equal(t, 100.0, out.WeightGrams)
	assert.Equal(t, 400.0, out.Calories)
	assert.Equal(t, "exact_calorie_correction", out.LearningApplied)
}

func TestAdjustNameCorrection(t *testing.T) {
	store := &stubCorrections{
		exact: []models.UserFeedback{{
			Model:                feedbackAt(time.Now()),
			AIFoodName:           "pizza",
			CorrectedFoodName:    "margherita pizza",
			AIWeightGrams:        100,
			CorrectedWeightGrams: 100,
			AICalories:           200,
			CorrectedCalories:    200,
		}},
	}
	svc := NewLearningService(store)

	out := svc.Adjust(&NutritionRecord{FoodName: "pizza", WeightGrams: 100, Calories: 200}, 1)
	assert.Equal(t, "margherita pizza", out.FoodName)
	assert.Equal(t, "exact_name_correction", out.LearningApplied)
}

func TestAdjustFuzzyMatch(t *testing.T) {
	store := &stubCorrections{
		all: []models.UserFeedback{
			{
				// shares only one token, skipped
				Model:                feedbackAt(time.Now()),
				AIFoodName:           "chicken soup",
				AIWeightGrams:        100,
				CorrectedWeightGrams: 300,
				AICalories:           100,
				CorrectedCalories:    300,
			},
			{
				// shares "chicken" and "curry"
				Model:                feedbackAt(time.Now()),
				AIFoodName:           "chicken curry bowl",
				AIWeightGrams:        100,
				CorrectedWeightGrams: 150,
				AICalories:           200,
				CorrectedCalories:    200,
			},
		},
	}
	svc := NewLearningService(store)

	out := svc.Adjust(&NutritionRecord{FoodName: "chicken curry", WeightGrams: 200, Calories: 330}, 1)
	assert.Equal(t, 300.0, out.WeightGrams)
	assert.Equal(t, 495.0, out.Calories)
	assert.Equal(t, "fuzzy_portion_adjustment", out.LearningApplied)
}

func TestAdjustFuzzyPrioritizesCalorieChanges(t *testing.T) {
	older := feedbackAt(time.Now().Add(-24 * time.Hour))
	newer := feedbackAt(time.Now())
	store := &stubCorrections{
		all: []models.UserFeedback{
			{
				// newer but only a mild tweak
				Model:                newer,
				AIFoodName:           "beef stew",
				AIWeightGrams:        100,
				CorrectedWeightGrams: 101,
				AICalories:           200,
				CorrectedCalories:    210,
			},
			{
				// older but a big calorie change, ranked first
				Model:                older,
				AIFoodName:           "beef stew",
				AIWeightGrams:        100,
				CorrectedWeightGrams: 100,
				AICalories:           200,
				CorrectedCalories:    400,
			},
		},
	}
	svc := NewLearningService(store)

	out := svc.Adjust(&NutritionRecord{FoodName: "beef stew", WeightGrams: 100, Calories: 200}, 1)
	assert.Equal(t, 400.0, out.Calories)
	assert.Equal(t, "fuzzy_calorie_correction", out.LearningApplied)
}

func categoryFeedback(ratio float64) models.UserFeedback {
	return models.UserFeedback{
		Model:             feedbackAt(time.Now()),
		AICalories:        100,
		CorrectedCalories: 100 * ratio,
		FoodCategory:      "grain",
	}
}

func TestAdjustCategoryAggregate(t *testing.T) {
	store := &stubCorrections{
		category: []models.UserFeedback{
			categoryFeedback(1.4),
			categoryFeedback(1.5),
			categoryFeedback(1.6),
		},
	}
	svc := NewLearningService(store)

	out := svc.Adjust(&NutritionRecord{FoodName: "pizza", WeightGrams: 100, Calories: 200}, 1)
	assert.InDelta(t, 300.0, out.Calories, 0.1)
	assert.Equal(t, "category_calorie_adjustment", out.LearningApplied)
}

func TestAdjustCategoryNeedsEnoughRecords(t *testing.T) {
	store := &stubCorrections{
		category: []models.UserFeedback{categoryFeedback(2.0), categoryFeedback(2.0)},
	}
	svc := NewLearningService(store)

	out := svc.Adjust(&NutritionRecord{FoodName: "pizza", WeightGrams: 100, Calories: 200}, 1)
	assert.Equal(t, 200.0, out.Calories)
	assert.Empty(t, out.LearningApplied)
}

func TestAdjustCategorySkipsSmallDeviation(t *testing.T) {
	store := &stubCorrections{
		category: []models.UserFeedback{
			categoryFeedback(1.02),
			categoryFeedback(1.05),
			categoryFeedback(0.98),
		},
	}
	svc := NewLearningService(store)

	out := svc.Adjust(&NutritionRecord{FoodName: "pizza", WeightGrams: 100, Calories: 200}, 1)
	assert.Equal(t, 200.0, out.Calories)
	assert.Empty(t, out.LearningApplied)
}

func TestAdjustCategoryIgnoresOutlierRatios(t *testing.T) {
	store := &stubCorrections{
		category: []models.UserFeedback{
			categoryFeedback(1.5),
			categoryFeedback(1.5),
			categoryFeedback(10.0), // outside [0.3, 3.0], dropped
		},
	}
	svc := NewLearningService(store)

	out := svc.Adjust(&NutritionRecord{FoodName: "pizza", WeightGrams: 100, Calories: 200}, 1)
	assert.InDelta(t, 300.0, out.Calories, 0.1)
}

func TestAdjustCompoundsPortionAndCategory(t *testing.T) {
	store := &stubCorrections{
		exact: []models.UserFeedback{{
			Model:                feedbackAt(time.Now()),
			AIFoodName:           "pizza",
			AIWeightGrams:        100,
			CorrectedWeightGrams: 150,
			AICalories:           200,
			CorrectedCalories:    200,
		}},
		category: []models.UserFeedback{
			categoryFeedback(1.5),
			categoryFeedback(1.5),
			categoryFeedback(1.5),
		},
	}
	svc := NewLearningService(store)

	out := svc.Adjust(&NutritionRecord{FoodName: "pizza", WeightGrams: 100, Calories: 200}, 1)
	// 200 x 1.5 (portion) x 1.5 (category)
	assert.InDelta(t, 450.0, out.Calories, 0.1)
	assert.Equal(t, "exact_portion_adjustment_category_calorie_adjustment", out.LearningApplied)
}

func TestAdjustIsIdempotentOverUnchangedHistory(t *testing.T) {
	store := &stubCorrections{
		exact: []models.UserFeedback{{
			Model:                feedbackAt(time.Now()),
			AIFoodName:           "pizza",
			AIWeightGrams:        100,
			CorrectedWeightGrams: 150,
			AICalories:           200,
			CorrectedCalories:    200,
		}},
		category: []models.UserFeedback{
			categoryFeedback(1.5),
			categoryFeedback(1.5),
			categoryFeedback(1.5),
		},
	}
	svc := NewLearningService(store)
	raw := &NutritionRecord{FoodName: "pizza", WeightGrams: 100, Calories: 200}

	first := svc.Adjust(raw, 1)
	second := svc.Adjust(raw, 1)
	assert.Equal(t, first, second)
}

func TestAdjustNilRecord(t *testing.T) {
	svc := NewLearningService(&stubCorrections{})
	assert.Nil(t, svc.Adjust(nil, 1))
}

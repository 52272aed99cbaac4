package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup struct {
	rec *NutritionRecord
	err error
}

func (s stubLookup) Lookup(label string, weightGrams float64) (*NutritionRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := *s.rec
	out.FoodName = label
	out.WeightGrams = weightGrams
	return &out, nil
}

var errStubDown = errors.New("stub unavailable")

func newOfflineService() *CalorieService {
	return NewCalorieService(NewNutritionRegistry(), stubLookup{err: errStubDown}, stubLookup{err: errStubDown})
}

func TestResolveInvalidInput(t *testing.T) {
	svc := newOfflineService()

	_, _, err := svc.Resolve(RecognitionResult{PrimaryFood: "", EstimatedWeight: 100})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Resolve(RecognitionResult{PrimaryFood: "rice", EstimatedWeight: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Resolve(RecognitionResult{PrimaryFood: "rice", EstimatedWeight: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveFallbackEstimate(t *testing.T) {
	svc := newOfflineService()

	rec, trace, err := svc.Resolve(RecognitionResult{
		PrimaryFood:     "zzqx blorp",
		AllFoods:        []string{"zzqx blorp"},
		EstimatedWeight: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, rec.DataSource)
	assert.Equal(t, SourceFallback, trace.DataSourceUsed)
	assert.Equal(t, 100.0, rec.WeightGrams)
	assert.Equal(t, 150.0, rec.Calories)
	assert.Equal(t, 5.0, rec.Protein)
	assert.Equal(t, 20.0, rec.Carbs)
	assert.Equal(t, 5.0, rec.Fat)
	assert.NotEmpty(t, trace.FallbackReasoning)
}

func TestResolveBrandTypicalServing(t *testing.T) {
	svc := newOfflineService()

	rec, trace, err := svc.Resolve(RecognitionResult{
		PrimaryFood:     "big mac",
		AllFoods:        []string{"big mac"},
		EstimatedWeight: 222,
	})
	require.NoError(t, err)

	// exact typical weight uses the label calories, no per-100g rescale
	assert.Equal(t, SourceEnhancedDB, rec.DataSource)
	assert.Equal(t, 570.0, rec.Calories)
	assert.Equal(t, 222.0, rec.WeightGrams)
	assert.Equal(t, SourceEnhancedDB, trace.DataSourceUsed)
}

func TestResolveBrandScaled(t *testing.T) {
	svc := newOfflineService()

	rec, _, err := svc.Resolve(RecognitionResult{
		PrimaryFood:     "big mac",
		AllFoods:        []string{"big mac"},
		EstimatedWeight: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 257.0, rec.Calories)
	assert.Equal(t, 100.0, rec.WeightGrams)
}

func TestResolveWebSearchAccepted(t *testing.T) {
	web := stubLookup{rec: &NutritionRecord{
		Calories:   540,
		Confidence: 0.95,
		DataSource: SourceWebSearch,
	}}
	svc := NewCalorieService(NewNutritionRegistry(), stubLookup{err: errStubDown}, web)

	rec, trace, err := svc.Resolve(RecognitionResult{
		PrimaryFood:     "mcdonalds mystery meal",
		AllFoods:        []string{"mcdonalds mystery meal"},
		EstimatedWeight: 250,
	})
	require.NoError(t, err)
	assert.Equal(t, SourceWebSearch, trace.DataSourceUsed)
	assert.Equal(t, 540.0, rec.Calories)
}

func TestResolveWebSearchConfidenceGate(t *testing.T) {
	web := stubLookup{rec: &NutritionRecord{
		Calories:   540,
		Confidence: 0.5,
		DataSource: SourceWebSearch,
	}}
	svc := NewCalorieService(NewNutritionRegistry(), stubLookup{err: errStubDown}, web)

	rec, trace, err := svc.Resolve(RecognitionResult{
		PrimaryFood:     "mcdonalds mystery meal",
		AllFoods:        []string{"mcdonalds mystery meal"},
		EstimatedWeight: 250,
	})
	require.NoError(t, err)

	// low-confidence web data is rejected and the cascade continues
	assert.NotEqual(t, SourceWebSearch, rec.DataSource)
	assert.Contains(t, trace.Fallbacks(), "confidence")
}

func TestResolveUSDAPath(t *testing.T) {
	usda := stubLookup{rec: &NutritionRecord{
		Calories:   110,
		Protein:    2.5,
		DataSource: SourceUSDA,
		Confidence: 0.85,
		Source:     "Quinoa, uncooked",
	}}
	svc := NewCalorieService(NewNutritionRegistry(), usda, stubLookup{err: errStubDown})

	rec, trace, err := svc.Resolve(RecognitionResult{
		PrimaryFood:     "quinoa bowl special",
		AllFoods:        []string{"quinoa bowl special"},
		EstimatedWeight: 150,
	})
	require.NoError(t, err)
	assert.Equal(t, SourceUSDA, trace.DataSourceUsed)
	assert.Equal(t, 110.0, rec.Calories)
	assert.Equal(t, 150.0, rec.WeightGrams)
}

func TestResolveMultiFood(t *testing.T) {
	svc := newOfflineService()

	rec, trace, err := svc.Resolve(RecognitionResult{
		PrimaryFood:     "grilled fish",
		AllFoods:        []string{"grilled fish", "steamed broccoli"},
		EstimatedWeight: 300,
	})
	require.NoError(t, err)

	assert.Equal(t, SourceMultiFood, rec.DataSource)
	assert.Equal(t, SourceMultiFood, trace.DataSourceUsed)
	assert.Equal(t, "grilled fish", rec.FoodName)
	assert.Equal(t, 300.0, rec.WeightGrams)

	// components resolve independently and the calories sum
	dist := DistributeWeight([]string{"grilled fish", "steamed broccoli"}, 300)
	fish := 206.0 * dist["grilled fish"] / 100
	broc := 34.0 * dist["steamed broccoli"] / 100
	assert.InDelta(t, fish+broc, rec.Calories, 0.1)
}

func TestDistributeWeightSumsToTotal(t *testing.T) {
	cases := [][]string{
		{"rice", "broccoli"},
		{"chicken", "rice", "soy sauce"},
		{"pizza", "ice cream"},
		{"chicken", "beef", "carrots", "gravy", "pudding"},
	}
	for _, labels := range cases {
		dist := DistributeWeight(labels, 500)
		require.Len(t, dist, len(labels))
		sum := 0.0
		for _, w := range dist {
			assert.Greater(t, w, 0.0)
			sum += w
		}
		assert.InDelta(t, 500.0, sum, 1e-9, "labels %v", labels)
	}
}

func TestDistributeWeightEmpty(t *testing.T) {
	assert.Empty(t, DistributeWeight(nil, 300))
}

func TestDistributeWeightGroupShares(t *testing.T) {
	// one main and one vegetable: main gets the larger share
	dist := DistributeWeight([]string{"rice", "broccoli"}, 300)
	assert.Greater(t, dist["rice"], dist["broccoli"])
}

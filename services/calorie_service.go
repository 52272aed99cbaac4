package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"backend/utils"
)

// ErrInvalidInput marks a contract violation from the recognition
// collaborator (empty label, non-positive weight). It is the only error class
// the resolver surfaces; every other failure is absorbed by the cascade.
var ErrInvalidInput = errors.New("invalid recognition input")

// webConfidenceThreshold gates free-text inference results. The client hands
// back whatever it parsed; acceptance is the resolver's call.
const webConfidenceThreshold = 0.7

type usdaLookup interface {
	Lookup(label string, weightGrams float64) (*NutritionRecord, error)
}

type webLookup interface {
	Lookup(label string, weightGrams float64) (*NutritionRecord, error)
}

// ResolutionTrace is the provenance record emitted alongside every resolved
// value, later persisted as an AnalysisLog row.
type ResolutionTrace struct {
	DataSourceUsed    string
	CalculationSteps  []string
	FallbackReasoning []string
}

func (t *ResolutionTrace) step(format string, args ...any) {
	t.CalculationSteps = append(t.CalculationSteps, fmt.Sprintf(format, args...))
}

func (t *ResolutionTrace) fallback(format string, args ...any) {
	t.FallbackReasoning = append(t.FallbackReasoning, fmt.Sprintf(format, args...))
}

func (t *ResolutionTrace) Steps() string     { return strings.Join(t.CalculationSteps, "; ") }
func (t *ResolutionTrace) Fallbacks() string { return strings.Join(t.FallbackReasoning, "; ") }

// CalorieService resolves a recognition result into a NutritionRecord by
// cascading through the data sources: curated brand table, web search for
// branded/restaurant items, USDA, local table, category heuristics, and a
// flat per-gram fallback. It always returns a record.
type CalorieService struct {
	registry *NutritionRegistry
	usda     usdaLookup
	web      webLookup
}

func NewCalorieService(registry *NutritionRegistry, usda usdaLookup, web webLookup) *CalorieService {
	return &CalorieService{registry: registry, usda: usda, web: web}
}

// Resolve never fails past input validation: any source error falls through
// to the next source and, in the worst case, the flat fallback estimate.
func (s *CalorieService) Resolve(rec RecognitionResult) (*NutritionRecord, *ResolutionTrace, error) {
	label := strings.TrimSpace(rec.PrimaryFood)
	if label == "" || rec.EstimatedWeight <= 0 {
		return nil, nil, fmt.Errorf("%w: label=%q weight=%.1f", ErrInvalidInput, rec.PrimaryFood, rec.EstimatedWeight)
	}

	trace := &ResolutionTrace{}
	weight := rec.EstimatedWeight

	// Step 1: curated brand/enhanced table.
	if entry := s.registry.LookupBrand(label); entry != nil {
		out := recordFromEntry(label, entry, weight, SourceEnhancedDB, 0.9, trace)
		trace.DataSourceUsed = SourceEnhancedDB
		roundRecord(out)
		log.Printf("calorie: %q resolved via enhanced database (%.1f kcal)", label, out.Calories)
		return out, trace, nil
	}
	trace.fallback("no enhanced database entry for %q", label)

	// Step 2: web search for branded/restaurant items, confidence gated.
	if utils.IsFastFoodItem(label) || utils.IsBrandedOrRestaurantItem(label) {
		web, err := s.web.Lookup(label, weight)
		switch {
		case err != nil:
			trace.fallback("web search failed: %v", err)
		case web.Confidence <= webConfidenceThreshold:
			trace.fallback("web search confidence %.2f below threshold", web.Confidence)
		default:
			trace.DataSourceUsed = SourceWebSearch
			trace.step("web search nutrition for %q at %.0fg", label, weight)
			roundRecord(web)
			log.Printf("calorie: %q resolved via web search (%.1f kcal)", label, web.Calories)
			return web, trace, nil
		}
	}

	// Step 4 (multi-item detections bypass the single-label path entirely):
	// split the weight across labels and sum component records.
	if labels := distinctLabels(rec.AllFoods); len(labels) > 1 {
		out := s.resolveMultiFood(labels, weight, trace)
		out.FoodName = rec.PrimaryFood
		roundRecord(out)
		return out, trace, nil
	}

	// Step 3: government database, then local/category matching.
	out := s.resolveSingle(label, weight, trace)
	roundRecord(out)
	return out, trace, nil
}

func (s *CalorieService) resolveSingle(label string, weight float64, trace *ResolutionTrace) *NutritionRecord {
	usdaRec, err := s.usda.Lookup(label, weight)
	if err == nil {
		trace.DataSourceUsed = SourceUSDA
		trace.step("USDA match %q scaled per-100g by %.2f", usdaRec.Source, weight/100.0)
		return usdaRec
	}
	trace.fallback("USDA lookup failed: %v", err)

	return s.resolveLocal(label, weight, trace)
}

// resolveLocal is the offline tail of the cascade: scored local table, then
// category heuristics, then the flat estimate.
func (s *CalorieService) resolveLocal(label string, weight float64, trace *ResolutionTrace) *NutritionRecord {
	if entry := s.registry.LookupLocal(label); entry != nil {
		trace.DataSourceUsed = SourceLocalDB
		trace.step("local database %q scaled by %.2f", entry.Name, weight/100.0)
		return scaledRecord(label, entry, weight, SourceLocalDB, 0.7)
	}
	trace.fallback("no local database match for %q", label)

	if entry := s.registry.LookupCategory(label); entry != nil {
		trace.DataSourceUsed = SourceCategoryMatch
		trace.step("category profile %q scaled by %.2f", entry.Name, weight/100.0)
		return scaledRecord(label, entry, weight, SourceCategoryMatch, 0.5)
	}
	trace.fallback("no category profile for %q", label)

	trace.DataSourceUsed = SourceFallback
	trace.step("flat fallback at 1.5 kcal/g for %.0fg", weight)
	return fallbackRecord(label, weight)
}

// resolveMultiFood distributes the total weight across the labels by portion
// group and sums the per-label records field-wise. Components resolve through
// the offline path only; one photo should not fan out into N network calls.
func (s *CalorieService) resolveMultiFood(labels []string, totalWeight float64, trace *ResolutionTrace) *NutritionRecord {
	dist := DistributeWeight(labels, totalWeight)
	trace.DataSourceUsed = SourceMultiFood
	trace.step("split %.0fg across %d items", totalWeight, len(labels))

	combined := &NutritionRecord{
		FoodName:    strings.Join(labels, " + "),
		WeightGrams: totalWeight,
		DataSource:  SourceMultiFood,
		Confidence:  0.6,
	}
	for _, label := range labels {
		part := s.resolveLocal(label, dist[label], trace)
		combined.Calories += part.Calories
		combined.Protein += part.Protein
		combined.Carbs += part.Carbs
		combined.Fat += part.Fat
		combined.Fiber += part.Fiber
		combined.Sugar += part.Sugar
		combined.Sodium += part.Sodium
		trace.step("%s: %.0fg → %.1f kcal (%s)", label, dist[label], part.Calories, part.DataSource)
	}
	// component lookups each stamped their own source; the combined record
	// is what gets reported
	trace.DataSourceUsed = SourceMultiFood
	return combined
}

// DistributeWeight partitions a total weight across N labels. Portion groups
// get fixed shares of the total (mains 50%, vegetables 30%, sauces 10%,
// unmatched labels count as half a main), proportioned by count within each
// group, then every share is normalized so the distribution sums exactly to
// the requested total. Lists with no categorized label divide equally.
func DistributeWeight(labels []string, totalWeight float64) map[string]float64 {
	dist := make(map[string]float64, len(labels))
	if len(labels) == 0 {
		return dist
	}

	var mainCount, veggieCount, sauceCount float64
	groups := make([]string, len(labels))
	for i, label := range labels {
		groups[i] = utils.PortionGroup(label)
		switch groups[i] {
		case utils.PortionMain:
			mainCount++
		case utils.PortionVegetable:
			veggieCount++
		case utils.PortionSauce:
			sauceCount++
		default:
			mainCount += 0.5
		}
	}

	totalPortions := mainCount + veggieCount + sauceCount
	if totalPortions == 0 {
		per := totalWeight / float64(len(labels))
		for _, label := range labels {
			dist[label] = per
		}
		return dist
	}

	sum := 0.0
	for i, label := range labels {
		var share float64
		switch groups[i] {
		case utils.PortionMain:
			share = (mainCount / totalPortions) * totalWeight * 0.5
		case utils.PortionVegetable:
			share = (veggieCount / totalPortions) * totalWeight * 0.3
		case utils.PortionSauce:
			share = (sauceCount / totalPortions) * totalWeight * 0.1
		default:
			share = totalWeight / float64(len(labels)) * 0.6
		}
		dist[label] = share
		sum += share
	}

	// The group percentages do not add up to the full total on their own;
	// normalize so callers can rely on the shares summing to totalWeight.
	if sum > 0 {
		f := totalWeight / sum
		for label := range dist {
			dist[label] *= f
		}
	}
	return dist
}

func distinctLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		key := strings.ToLower(strings.TrimSpace(l))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, l)
	}
	return out
}

// recordFromEntry builds a record from a curated entry, honoring the typical
// serving: when the requested weight is exactly the entry's typical weight the
// label calories are used verbatim instead of re-scaling per-100g density.
func recordFromEntry(label string, entry *FoodSourceEntry, weight float64, source string, confidence float64, trace *ResolutionTrace) *NutritionRecord {
	out := scaledRecord(label, entry, weight, source, confidence)
	if entry.TypicalWeightGrams > 0 && weight == entry.TypicalWeightGrams && entry.TypicalCalories > 0 {
		out.Calories = entry.TypicalCalories
		trace.step("typical serving %.0fg → %.0f kcal verbatim", weight, entry.TypicalCalories)
	} else {
		trace.step("per-100g density %.0f kcal scaled by %.2f", entry.CaloriesPer100g, weight/100.0)
	}
	return out
}

func scaledRecord(label string, entry *FoodSourceEntry, weight float64, source string, confidence float64) *NutritionRecord {
	scale := weight / 100.0
	return &NutritionRecord{
		FoodName:    label,
		WeightGrams: weight,
		Calories:    entry.CaloriesPer100g * scale,
		Protein:     entry.ProteinPer100g * scale,
		Carbs:       entry.CarbsPer100g * scale,
		Fat:         entry.FatPer100g * scale,
		Fiber:       entry.FiberPer100g * scale,
		Sugar:       entry.SugarPer100g * scale,
		Sodium:      entry.SodiumPer100g * scale,
		DataSource:  source,
		Confidence:  confidence,
	}
}

// fallbackRecord is the guaranteed floor of the cascade: flat per-gram
// densities for an average food item.
func fallbackRecord(label string, weight float64) *NutritionRecord {
	return &NutritionRecord{
		FoodName:    label,
		WeightGrams: weight,
		Calories:    weight * 1.5,
		Protein:     weight * 0.05,
		Carbs:       weight * 0.2,
		Fat:         weight * 0.05,
		Fiber:       weight * 0.02,
		Sugar:       weight * 0.08,
		Sodium:      weight * 0.003,
		DataSource:  SourceFallback,
		Confidence:  0.3,
	}
}

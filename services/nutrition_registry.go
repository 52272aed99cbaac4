package services

import "strings"

// FoodSourceEntry is one curated registry row. Density fields are per 100g.
// TypicalWeightGrams/TypicalCalories, when set, carry the label-accurate
// serving so a known portion is not re-derived through scaling.
type FoodSourceEntry struct {
	Name            string
	CaloriesPer100g float64
	ProteinPer100g  float64
	CarbsPer100g    float64
	FatPer100g      float64
	FiberPer100g    float64
	SugarPer100g    float64
	SodiumPer100g   float64 // grams

	TypicalWeightGrams float64
	TypicalCalories    float64
	Category           string
}

// NutritionRegistry holds the curated brand and generic tables plus the
// category heuristics. Pure lookups, no I/O; safe for concurrent readers.
type NutritionRegistry struct {
	brand           []FoodSourceEntry
	brandIndex      map[string]*FoodSourceEntry
	brandCategories []brandCategoryGroup
	local           []FoodSourceEntry
	category        []FoodSourceEntry
}

func NewNutritionRegistry() *NutritionRegistry {
	r := &NutritionRegistry{
		brand:           brandEntries(),
		brandCategories: brandCategoryKeys,
		local:           localEntries(),
		category:        categoryEntries(),
	}
	r.brandIndex = make(map[string]*FoodSourceEntry, len(r.brand))
	for i := range r.brand {
		r.brandIndex[r.brand[i].Name] = &r.brand[i]
	}
	return r
}

// LookupBrand resolves curated brand/fast-food entries: exact key, then
// substring containment either direction, then membership in a brand category
// group resolved back through its canonical key. Brand keys are curated to be
// near-unique so the first qualifying entry wins.
func (r *NutritionRegistry) LookupBrand(label string) *FoodSourceEntry {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return nil
	}

	if e, ok := r.brandIndex[key]; ok {
		return e
	}

	for i := range r.brand {
		name := r.brand[i].Name
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return &r.brand[i]
		}
	}

	for _, group := range r.brandCategories {
		for _, food := range group.Foods {
			if strings.Contains(key, food) || strings.Contains(food, key) {
				if e, ok := r.brandIndex[food]; ok {
					return e
				}
			}
		}
	}

	return nil
}

// Words whose presence in a token overlap makes a local match far more likely
// to be about the same dish.
var importantFoodWords = map[string]bool{
	"chicken": true, "beef": true, "pork": true, "fish": true, "salmon": true,
	"pizza": true, "burger": true, "rice": true, "pasta": true,
}

// LookupLocal scores the generic table: exact equality 100, substring either
// direction 80, otherwise token overlap scaled to 0-50 with a +20 bonus when
// the overlap includes a staple food word. Ties keep the earlier entry.
// Returns nil when the best score is below 10; callers then try the category
// heuristics.
func (r *NutritionRegistry) LookupLocal(label string) *FoodSourceEntry {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return nil
	}

	var best *FoodSourceEntry
	bestScore := 0.0

	keyWords := tokenSet(key)
	for i := range r.local {
		entry := &r.local[i]
		score := 0.0

		switch {
		case key == entry.Name:
			score = 100
		case strings.Contains(key, entry.Name) || strings.Contains(entry.Name, key):
			score = 80
		default:
			entryWords := tokenSet(entry.Name)
			common := intersect(keyWords, entryWords)
			if len(common) > 0 {
				denom := len(keyWords)
				if len(entryWords) > denom {
					denom = len(entryWords)
				}
				score = float64(len(common)) / float64(denom) * 50
				for w := range common {
					if importantFoodWords[w] {
						score += 20
						break
					}
				}
			}
		}

		if score > bestScore {
			bestScore = score
			best = entry
		}
	}

	if bestScore < 10 {
		return nil
	}
	return best
}

// LookupCategory does an ordered substring scan of the category keyword table,
// then the broader catch-all groups. Returns nil when nothing matches.
func (r *NutritionRegistry) LookupCategory(label string) *FoodSourceEntry {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return nil
	}

	for i := range r.category {
		if strings.Contains(key, r.category[i].Name) {
			return &r.category[i]
		}
	}

	// Broader catch-alls map onto representative profiles.
	if containsAnyWord(key, "meat", "steak", "roast") {
		return r.categoryByName("beef")
	}
	if containsAnyWord(key, "vegetable", "veggie", "green") {
		return r.categoryByName("vegetable")
	}
	if containsAnyWord(key, "fruit", "berry", "apple", "orange") {
		return r.categoryByName("fruit")
	}

	return nil
}

func (r *NutritionRegistry) categoryByName(name string) *FoodSourceEntry {
	for i := range r.category {
		if r.category[i].Name == name {
			return &r.category[i]
		}
	}
	return nil
}

func tokenSet(s string) map[string]bool {
	out := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		out[w] = true
	}
	return out
}

func intersect(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for w := range a {
		if b[w] {
			out[w] = true
		}
	}
	return out
}

func containsAnyWord(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

type brandCategoryGroup struct {
	Name  string
	Foods []string
}

// brandCategoryKeys groups curated brand keys so a label like "mcdonalds big
// mac meal" can still resolve through its canonical item. Ordered so repeated
// lookups pick the same entry.
var brandCategoryKeys = []brandCategoryGroup{
	{"fast_food", []string{"big mac", "bigmac", "whopper", "quarter pounder", "mcchicken", "baconator", "son of baconator"}},
	{"pizza", []string{"pizza slice", "pepperoni pizza", "cheese pizza", "margherita pizza"}},
	{"mexican", []string{"burrito", "quesadilla", "taco"}},
	{"indian", []string{"roti", "chapati", "naan", "dal", "roti and dal", "rice and dal"}},
	{"breakfast", []string{"pancakes", "waffle", "french toast"}},
	{"salads", []string{"caesar salad", "green salad"}},
	{"sandwiches", []string{"sandwich", "club sandwich"}},
}

func brandEntries() []FoodSourceEntry {
	return []FoodSourceEntry{
		// McDonald's
		{Name: "big mac", CaloriesPer100g: 257, ProteinPer100g: 13, CarbsPer100g: 20, FatPer100g: 17, TypicalWeightGrams: 222, TypicalCalories: 570},
		{Name: "bigmac", CaloriesPer100g: 257, ProteinPer100g: 13, CarbsPer100g: 20, FatPer100g: 17, TypicalWeightGrams: 222, TypicalCalories: 570},
		{Name: "mcdonald big mac", CaloriesPer100g: 257, ProteinPer100g: 13, CarbsPer100g: 20, FatPer100g: 17, TypicalWeightGrams: 222, TypicalCalories: 570},
		{Name: "quarter pounder", CaloriesPer100g: 265, ProteinPer100g: 15, CarbsPer100g: 22, FatPer100g: 16, TypicalWeightGrams: 194, TypicalCalories: 515},
		{Name: "mcchicken", CaloriesPer100g: 208, ProteinPer100g: 12, CarbsPer100g: 20, FatPer100g: 11, TypicalWeightGrams: 143, TypicalCalories: 400},
		{Name: "chicken mcnuggets", CaloriesPer100g: 300, ProteinPer100g: 18, CarbsPer100g: 13, FatPer100g: 20, TypicalWeightGrams: 77, TypicalCalories: 230}, // 6 pieces

		// Burger King
		{Name: "whopper", CaloriesPer100g: 250, ProteinPer100g: 13, CarbsPer100g: 22, FatPer100g: 15, TypicalWeightGrams: 291, TypicalCalories: 660},
		{Name: "burger king whopper", CaloriesPer100g: 250, ProteinPer100g: 13, CarbsPer100g: 22, FatPer100g: 15, TypicalWeightGrams: 291, TypicalCalories: 660},

		// Wendy's
		{Name: "baconator", CaloriesPer100g: 349, ProteinPer100g: 20, CarbsPer100g: 25, FatPer100g: 23, TypicalWeightGrams: 275, TypicalCalories: 960},
		{Name: "wendys baconator", CaloriesPer100g: 349, ProteinPer100g: 20, CarbsPer100g: 25, FatPer100g: 23, TypicalWeightGrams: 275, TypicalCalories: 960},
		{Name: "son of baconator", CaloriesPer100g: 290, ProteinPer100g: 18, CarbsPer100g: 23, FatPer100g: 18, TypicalWeightGrams: 200, TypicalCalories: 580},

		// Pizza
		{Name: "pizza slice", CaloriesPer100g: 266, ProteinPer100g: 11, CarbsPer100g: 33, FatPer100g: 10, TypicalWeightGrams: 100, TypicalCalories: 285},
		{Name: "pepperoni pizza", CaloriesPer100g: 298, ProteinPer100g: 12, CarbsPer100g: 30, FatPer100g: 15, TypicalWeightGrams: 120, TypicalCalories: 358},
		{Name: "cheese pizza", CaloriesPer100g: 276, ProteinPer100g: 12, CarbsPer100g: 33, FatPer100g: 11, TypicalWeightGrams: 100, TypicalCalories: 276},
		{Name: "margherita pizza", CaloriesPer100g: 250, ProteinPer100g: 11, CarbsPer100g: 32, FatPer100g: 9, TypicalWeightGrams: 120, TypicalCalories: 300},

		// Common items with well-known servings
		{Name: "apple", CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2, TypicalWeightGrams: 150, TypicalCalories: 78},
		{Name: "banana", CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3, TypicalWeightGrams: 120, TypicalCalories: 107},

		// Rice dishes
		{Name: "rice and beans", CaloriesPer100g: 135, ProteinPer100g: 4.5, CarbsPer100g: 24, FatPer100g: 2, TypicalWeightGrams: 200, TypicalCalories: 270},
		{Name: "rice", CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3, TypicalWeightGrams: 150, TypicalCalories: 195},

		// Salads
		{Name: "caesar salad", CaloriesPer100g: 90, ProteinPer100g: 3.5, CarbsPer100g: 6, FatPer100g: 7, TypicalWeightGrams: 200, TypicalCalories: 180},
		{Name: "green salad", CaloriesPer100g: 20, ProteinPer100g: 1.5, CarbsPer100g: 4, FatPer100g: 0.2, TypicalWeightGrams: 100, TypicalCalories: 20},

		// Chicken dishes
		{Name: "grilled chicken", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6, TypicalWeightGrams: 120, TypicalCalories: 198},
		{Name: "fried chicken", CaloriesPer100g: 320, ProteinPer100g: 19, CarbsPer100g: 8, FatPer100g: 24, TypicalWeightGrams: 100, TypicalCalories: 320},

		// Sandwiches
		{Name: "sandwich", CaloriesPer100g: 250, ProteinPer100g: 12, CarbsPer100g: 30, FatPer100g: 10, TypicalWeightGrams: 150, TypicalCalories: 375},
		{Name: "club sandwich", CaloriesPer100g: 280, ProteinPer100g: 15, CarbsPer100g: 25, FatPer100g: 15, TypicalWeightGrams: 200, TypicalCalories: 560},

		// Mexican
		{Name: "burrito", CaloriesPer100g: 206, ProteinPer100g: 8, CarbsPer100g: 28, FatPer100g: 7, TypicalWeightGrams: 220, TypicalCalories: 453},
		{Name: "quesadilla", CaloriesPer100g: 234, ProteinPer100g: 11, CarbsPer100g: 22, FatPer100g: 12, TypicalWeightGrams: 150, TypicalCalories: 351},
		{Name: "taco", CaloriesPer100g: 206, ProteinPer100g: 10, CarbsPer100g: 18, FatPer100g: 11, TypicalWeightGrams: 70, TypicalCalories: 144},

		// Indian
		{Name: "roti", CaloriesPer100g: 299, ProteinPer100g: 9, CarbsPer100g: 50, FatPer100g: 8, TypicalWeightGrams: 40, TypicalCalories: 120},
		{Name: "chapati", CaloriesPer100g: 299, ProteinPer100g: 9, CarbsPer100g: 50, FatPer100g: 8, TypicalWeightGrams: 40, TypicalCalories: 120},
		{Name: "naan", CaloriesPer100g: 310, ProteinPer100g: 9, CarbsPer100g: 45, FatPer100g: 12, TypicalWeightGrams: 80, TypicalCalories: 248},
		{Name: "dal", CaloriesPer100g: 130, ProteinPer100g: 8, CarbsPer100g: 20, FatPer100g: 2, TypicalWeightGrams: 150, TypicalCalories: 195},
		{Name: "dal curry", CaloriesPer100g: 130, ProteinPer100g: 8, CarbsPer100g: 20, FatPer100g: 2, TypicalWeightGrams: 150, TypicalCalories: 195},
		{Name: "lentil curry", CaloriesPer100g: 130, ProteinPer100g: 8, CarbsPer100g: 20, FatPer100g: 2, TypicalWeightGrams: 150, TypicalCalories: 195},
		{Name: "roti and dal", CaloriesPer100g: 180, ProteinPer100g: 8, CarbsPer100g: 30, FatPer100g: 4, TypicalWeightGrams: 240, TypicalCalories: 432}, // 2 roti + dal
		{Name: "rice and dal", CaloriesPer100g: 135, ProteinPer100g: 5, CarbsPer100g: 25, FatPer100g: 2, TypicalWeightGrams: 250, TypicalCalories: 338},

		// Pasta
		{Name: "pasta with sauce", CaloriesPer100g: 131, ProteinPer100g: 5, CarbsPer100g: 25, FatPer100g: 1.1, TypicalWeightGrams: 250, TypicalCalories: 328},
		{Name: "spaghetti", CaloriesPer100g: 158, ProteinPer100g: 6, CarbsPer100g: 31, FatPer100g: 1, TypicalWeightGrams: 200, TypicalCalories: 316},

		// Breakfast
		{Name: "pancakes", CaloriesPer100g: 227, ProteinPer100g: 6, CarbsPer100g: 28, FatPer100g: 9, TypicalWeightGrams: 80, TypicalCalories: 182},
		{Name: "waffle", CaloriesPer100g: 291, ProteinPer100g: 8, CarbsPer100g: 33, FatPer100g: 14, TypicalWeightGrams: 75, TypicalCalories: 218},
		{Name: "french toast", CaloriesPer100g: 230, ProteinPer100g: 8, CarbsPer100g: 25, FatPer100g: 11, TypicalWeightGrams: 65, TypicalCalories: 150},
	}
}

func localEntries() []FoodSourceEntry {
	return []FoodSourceEntry{
		{Name: "apple", CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2, FiberPer100g: 2.4, SugarPer100g: 10, SodiumPer100g: 0.001},
		{Name: "banana", CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3, FiberPer100g: 2.6, SugarPer100g: 12, SodiumPer100g: 0.001},
		{Name: "orange", CaloriesPer100g: 47, ProteinPer100g: 0.9, CarbsPer100g: 12, FatPer100g: 0.1, FiberPer100g: 2.4, SugarPer100g: 9, SodiumPer100g: 0.001},
		{Name: "rice", CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3, FiberPer100g: 0.4, SugarPer100g: 0.1, SodiumPer100g: 0.001},
		{Name: "chicken", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6, FiberPer100g: 0, SugarPer100g: 0, SodiumPer100g: 0.074},
		{Name: "chicken breast", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6, FiberPer100g: 0, SugarPer100g: 0, SodiumPer100g: 0.074},
		{Name: "beef", CaloriesPer100g: 250, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 15, FiberPer100g: 0, SugarPer100g: 0, SodiumPer100g: 0.059},
		{Name: "pork", CaloriesPer100g: 242, ProteinPer100g: 27, CarbsPer100g: 0, FatPer100g: 14, FiberPer100g: 0, SugarPer100g: 0, SodiumPer100g: 0.062},
		{Name: "fish", CaloriesPer100g: 206, ProteinPer100g: 22, CarbsPer100g: 0, FatPer100g: 12, FiberPer100g: 0, SugarPer100g: 0, SodiumPer100g: 0.059},
		{Name: "salmon", CaloriesPer100g: 208, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 13, FiberPer100g: 0, SugarPer100g: 0, SodiumPer100g: 0.054},
		{Name: "bread", CaloriesPer100g: 265, ProteinPer100g: 9, CarbsPer100g: 49, FatPer100g: 3.2, FiberPer100g: 2.7, SugarPer100g: 5, SodiumPer100g: 0.491},
		{Name: "pasta", CaloriesPer100g: 131, ProteinPer100g: 5, CarbsPer100g: 25, FatPer100g: 1.1, FiberPer100g: 1.8, SugarPer100g: 0.6, SodiumPer100g: 0.001},
		{Name: "egg", CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11, FiberPer100g: 0, SugarPer100g: 1.1, SodiumPer100g: 0.124},
		{Name: "milk", CaloriesPer100g: 61, ProteinPer100g: 3.2, CarbsPer100g: 4.8, FatPer100g: 3.3, FiberPer100g: 0, SugarPer100g: 4.8, SodiumPer100g: 0.044},
		{Name: "cheese", CaloriesPer100g: 402, ProteinPer100g: 25, CarbsPer100g: 1.3, FatPer100g: 33, FiberPer100g: 0, SugarPer100g: 0.5, SodiumPer100g: 0.621},
		{Name: "yogurt", CaloriesPer100g: 59, ProteinPer100g: 10, CarbsPer100g: 3.6, FatPer100g: 0.4, FiberPer100g: 0, SugarPer100g: 3.2, SodiumPer100g: 0.046},
		{Name: "broccoli", CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 7, FatPer100g: 0.4, FiberPer100g: 2.6, SugarPer100g: 1.5, SodiumPer100g: 0.033},
		{Name: "carrots", CaloriesPer100g: 41, ProteinPer100g: 0.9, CarbsPer100g: 10, FatPer100g: 0.2, FiberPer100g: 2.8, SugarPer100g: 4.7, SodiumPer100g: 0.069},
		{Name: "spinach", CaloriesPer100g: 23, ProteinPer100g: 2.9, CarbsPer100g: 3.6, FatPer100g: 0.4, FiberPer100g: 2.2, SugarPer100g: 0.4, SodiumPer100g: 0.079},
		{Name: "tomato", CaloriesPer100g: 18, ProteinPer100g: 0.9, CarbsPer100g: 3.9, FatPer100g: 0.2, FiberPer100g: 1.2, SugarPer100g: 2.6, SodiumPer100g: 0.005},
		{Name: "potato", CaloriesPer100g: 77, ProteinPer100g: 2, CarbsPer100g: 17, FatPer100g: 0.1, FiberPer100g: 2.2, SugarPer100g: 0.8, SodiumPer100g: 0.006},
		{Name: "pizza", CaloriesPer100g: 266, ProteinPer100g: 11, CarbsPer100g: 33, FatPer100g: 10, FiberPer100g: 2.3, SugarPer100g: 3.6, SodiumPer100g: 0.598},
		{Name: "burger", CaloriesPer100g: 295, ProteinPer100g: 17, CarbsPer100g: 25, FatPer100g: 15, FiberPer100g: 2, SugarPer100g: 4, SodiumPer100g: 0.497},
		{Name: "sandwich", CaloriesPer100g: 250, ProteinPer100g: 12, CarbsPer100g: 30, FatPer100g: 10, FiberPer100g: 3, SugarPer100g: 4, SodiumPer100g: 0.38},
		{Name: "salad", CaloriesPer100g: 20, ProteinPer100g: 1.5, CarbsPer100g: 4, FatPer100g: 0.2, FiberPer100g: 1.8, SugarPer100g: 2, SodiumPer100g: 0.028},
	}
}

// categoryEntries is an ordered keyword→profile list; first keyword contained
// in the label wins.
func categoryEntries() []FoodSourceEntry {
	return []FoodSourceEntry{
		// Meats/protein
		{Name: "chicken", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6, FiberPer100g: 0, SugarPer100g: 0, SodiumPer100g: 0.074},
		{Name: "beef", CaloriesPer100g: 250, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 15, FiberPer100g: 0, SugarPer100g: 0, SodiumPer100g: 0.059},
		{Name: "pork", CaloriesPer100g: 242, ProteinPer100g: 27, CarbsPer100g: 0, FatPer100g: 14, FiberPer100g: 0, SugarPer100g: 0, SodiumPer100g: 0.062},
		{Name: "fish", CaloriesPer100g: 206, ProteinPer100g: 22, CarbsPer100g: 0, FatPer100g: 12, FiberPer100g: 0, SugarPer100g: 0, SodiumPer100g: 0.059},
		{Name: "salmon", CaloriesPer100g: 208, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 13, FiberPer100g: 0, SugarPer100g: 0, SodiumPer100g: 0.054},

		// Carb staples
		{Name: "rice", CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3, FiberPer100g: 0.4, SugarPer100g: 0.1, SodiumPer100g: 0.001},
		{Name: "pasta", CaloriesPer100g: 131, ProteinPer100g: 5, CarbsPer100g: 25, FatPer100g: 1.1, FiberPer100g: 1.8, SugarPer100g: 0.6, SodiumPer100g: 0.001},
		{Name: "bread", CaloriesPer100g: 265, ProteinPer100g: 9, CarbsPer100g: 49, FatPer100g: 3.2, FiberPer100g: 2.7, SugarPer100g: 5, SodiumPer100g: 0.491},
		{Name: "noodles", CaloriesPer100g: 138, ProteinPer100g: 4.5, CarbsPer100g: 25, FatPer100g: 2.2, FiberPer100g: 1.8, SugarPer100g: 0.6, SodiumPer100g: 0.001},

		// Mixed dishes, denser estimates
		{Name: "pizza", CaloriesPer100g: 280, ProteinPer100g: 12, CarbsPer100g: 35, FatPer100g: 12, FiberPer100g: 2.5, SugarPer100g: 4, SodiumPer100g: 0.64},
		{Name: "burger", CaloriesPer100g: 320, ProteinPer100g: 18, CarbsPer100g: 28, FatPer100g: 18, FiberPer100g: 2, SugarPer100g: 4, SodiumPer100g: 0.52},
		{Name: "sandwich", CaloriesPer100g: 250, ProteinPer100g: 12, CarbsPer100g: 30, FatPer100g: 10, FiberPer100g: 3, SugarPer100g: 4, SodiumPer100g: 0.38},
		{Name: "taco", CaloriesPer100g: 220, ProteinPer100g: 11, CarbsPer100g: 20, FatPer100g: 12, FiberPer100g: 3, SugarPer100g: 2, SodiumPer100g: 0.35},

		// Vegetables
		{Name: "vegetable", CaloriesPer100g: 35, ProteinPer100g: 3, CarbsPer100g: 7, FatPer100g: 0.4, FiberPer100g: 3, SugarPer100g: 2, SodiumPer100g: 0.04},
		{Name: "salad", CaloriesPer100g: 20, ProteinPer100g: 1.5, CarbsPer100g: 4, FatPer100g: 0.2, FiberPer100g: 1.8, SugarPer100g: 2, SodiumPer100g: 0.028},

		// Fruit
		{Name: "fruit", CaloriesPer100g: 60, ProteinPer100g: 0.5, CarbsPer100g: 15, FatPer100g: 0.2, FiberPer100g: 2.5, SugarPer100g: 12, SodiumPer100g: 0.001},
	}
}

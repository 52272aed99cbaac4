package utils

import "strings"

// The classifiers in this file are all pure keyword tables scanned in a fixed
// order. Keeping them as data rather than scattered conditionals lets each
// table be unit-tested on its own and swapped for another locale.

type categoryRule struct {
	Name     string
	Keywords []string
}

// categoryRules is evaluated in order and the first hit wins. The ordering is
// load-bearing: "chicken sandwich" classifies as grain (via "sandwich") before
// protein is ever checked, and category-aggregated corrections depend on that
// grouping staying stable.
var categoryRules = []categoryRule{
	{"grain", []string{"pizza", "pasta", "bread", "rice", "noodle", "bagel", "cereal", "oatmeal", "quinoa", "barley", "wheat", "tortilla", "wrap", "sandwich"}},
	{"protein", []string{"chicken", "beef", "pork", "fish", "meat", "turkey", "ham", "salami", "cold cut", "deli", "sausage", "bacon", "egg", "tofu", "beans", "lentil", "salmon", "tuna"}},
	{"fruit", []string{"apple", "banana", "orange", "fruit", "berry", "grape", "mango", "pineapple", "strawberry", "blueberry", "cherry", "peach", "pear", "kiwi"}},
	{"vegetable", []string{"salad", "vegetable", "broccoli", "carrot", "spinach", "lettuce", "tomato", "pepper", "onion", "potato", "sweet potato", "corn", "peas", "green", "cabbage"}},
	{"dairy", []string{"milk", "cheese", "yogurt", "butter", "cream", "cottage cheese", "mozzarella", "cheddar", "parmesan"}},
	{"snack", []string{"chips", "crackers", "pretzels", "popcorn", "nuts", "trail mix", "granola"}},
	{"dessert", []string{"cake", "cookie", "ice cream", "candy", "chocolate", "brownie", "pie", "donut", "muffin", "sweet", "dessert"}},
	{"fast_food", []string{"burger", "fries", "mcdonalds", "subway", "kfc", "taco", "burrito"}},
	{"beverage", []string{"coffee", "tea", "soda", "juice", "water", "beer", "wine", "smoothie", "shake"}},
}

// ClassifyFoodCategory maps a food label to its category tag, or "other".
func ClassifyFoodCategory(foodName string) string {
	lower := strings.ToLower(foodName)
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Name
			}
		}
	}
	return "other"
}

var fastFoodChains = []string{
	"mcdonalds", "mcdonald", "burger king", "kfc", "taco bell",
	"subway", "pizza hut", "dominos", "starbucks", "dunkin",
	"wendys", "wendy", "chipotle", "five guys", "in-n-out", "jack in the box",
	"carl jr", "hardees", "arbys", "dairy queen", "sonic",
	"papa johns", "little caesars", "popeyes", "chick-fil-a",
}

var fastFoodItems = []string{
	"big mac", "whopper", "quarter pounder", "mcchicken", "baconator",
	"son of baconator", "frappuccino", "latte", "cappuccino",
}

// IsFastFoodItem reports whether the label names a fast-food chain or one of
// its signature menu items.
func IsFastFoodItem(foodName string) bool {
	lower := strings.ToLower(foodName)
	return containsAny(lower, fastFoodChains) || containsAny(lower, fastFoodItems)
}

var brandedKeywords = []string{
	// Sit-down chains not in the fast-food list
	"olive garden", "red lobster", "applebees", "chilis", "outback",
	"ihop", "dennys", "panda express", "pf changs", "cheesecake factory",

	// Branded packaged foods
	"oreo", "doritos", "lays", "pringles", "pepsi", "coca cola", "coke",
	"snickers", "kit kat", "reeses", "hershey", "mars", "twix",
	"cheerios", "frosted flakes", "lucky charms", "fruit loops",

	// Branded frozen/dessert items
	"ben jerry", "haagen dazs", "blue bell", "breyers",
	"lean cuisine", "hungry man", "stouffers", "marie callender",

	// Coffee/drinks
	"frappuccino", "macchiato", "cappuccino", "americano",
	"energy drink", "red bull", "monster", "rockstar",

	// Generic indicators
	"brand", "restaurant", "chain", "frozen meal", "packaged",
}

// IsBrandedOrRestaurantItem reports whether the label is worth a web search:
// branded packaged food or a restaurant dish with published nutrition facts.
func IsBrandedOrRestaurantItem(foodName string) bool {
	return containsAny(strings.ToLower(foodName), brandedKeywords)
}

// Portion groups used by the multi-item weight distribution.
const (
	PortionMain      = "main"
	PortionVegetable = "vegetable"
	PortionSauce     = "sauce"
	PortionDefault   = "default"
)

var portionMains = []string{"rice", "pasta", "potato", "bread", "meat", "chicken", "beef", "fish"}
var portionVegetables = []string{"broccoli", "carrots", "spinach", "lettuce", "tomato", "onion"}
var portionSauces = []string{"sauce", "salsa", "dressing", "gravy"}

// PortionGroup buckets a label for weight splitting. Unmatched labels land in
// the default bucket, which the distribution treats as a half-weight main.
func PortionGroup(foodName string) string {
	lower := strings.ToLower(foodName)
	switch {
	case containsAny(lower, portionMains):
		return PortionMain
	case containsAny(lower, portionVegetables):
		return PortionVegetable
	case containsAny(lower, portionSauces):
		return PortionSauce
	default:
		return PortionDefault
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

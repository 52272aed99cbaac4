package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFoodCategory(t *testing.T) {
	cases := []struct {
		food string
		want string
	}{
		{"pizza", "grain"},
		{"chicken sandwich", "grain"}, // sandwich outranks chicken
		{"grilled chicken", "protein"},
		{"banana", "fruit"},
		{"caesar salad", "vegetable"},
		{"cheddar cheese", "dairy"},
		{"trail mix", "snack"},
		{"chocolate brownie", "dessert"},
		{"french fries", "fast_food"},
		{"coffee", "beverage"},
		{"mystery stew", "other"},
		{"", "other"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyFoodCategory(tc.food), "food %q", tc.food)
	}
}

func TestIsFastFoodItem(t *testing.T) {
	assert.True(t, IsFastFoodItem("Big Mac"))
	assert.True(t, IsFastFoodItem("mcdonalds fries"))
	assert.True(t, IsFastFoodItem("Wendys Baconator"))
	assert.False(t, IsFastFoodItem("grilled chicken"))
	assert.False(t, IsFastFoodItem("homemade soup"))
}

func TestIsBrandedOrRestaurantItem(t *testing.T) {
	assert.True(t, IsBrandedOrRestaurantItem("Oreo cookies"))
	assert.True(t, IsBrandedOrRestaurantItem("olive garden breadsticks"))
	assert.True(t, IsBrandedOrRestaurantItem("red bull energy drink"))
	assert.False(t, IsBrandedOrRestaurantItem("banana"))
}

func TestPortionGroup(t *testing.T) {
	assert.Equal(t, PortionMain, PortionGroup("fried rice"))
	assert.Equal(t, PortionMain, PortionGroup("roast chicken"))
	assert.Equal(t, PortionVegetable, PortionGroup("steamed broccoli"))
	assert.Equal(t, PortionSauce, PortionGroup("soy sauce"))
	assert.Equal(t, PortionDefault, PortionGroup("ice cream"))
}

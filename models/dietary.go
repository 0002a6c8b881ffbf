package models

// DietaryRequest lists the accommodations a customer asked for. Each course
// type only reacts to the flags that make sense for it.
type DietaryRequest struct {
	Vegetarian bool
	Vegan      bool
	LowSodium  bool
	GlutenFree bool
	NutFree    bool
	LowSugar   bool
}

var (
	nonVegetarianIngredients = []string{"Meat", "Chicken", "Fish", "Beef", "Pork", "Lamb", "Shrimp", "Bacon"}
	glutenIngredients        = []string{"Wheat", "Flour", "Bread", "Pasta", "Barley", "Rye", "Oats", "Crust"}
	dairyAndEggIngredients   = []string{"Milk", "Eggs", "Cheese", "Butter", "Cream", "Yogurt"}
	nutIngredients           = []string{"Almonds", "Walnuts", "Pecans", "Hazelnuts", "Peanuts", "Cashews", "Pistachios"}

	vegetarianSubstitutes = []string{"Beans", "Mushrooms"}
)

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

// substituteIngredients replaces banned ingredients with the substitutes in
// order. Once the substitutes run out, further banned ingredients are dropped.
// A substitute keeps the stock figures of the ingredient it replaces.
func substituteIngredients(in []Ingredient, banned []string, substitutes []string) []Ingredient {
	out := make([]Ingredient, 0, len(in))
	used := 0
	for _, ing := range in {
		if !contains(banned, ing.Name) {
			out = append(out, ing)
			continue
		}
		if used < len(substitutes) {
			ing.Name = substitutes[used]
			used++
			out = append(out, ing)
		}
	}
	return out
}

func stripIngredients(in []Ingredient, banned []string) []Ingredient {
	return substituteIngredients(in, banned, nil)
}

// lowerLevel reduces an intensity level without going below zero.
func lowerLevel(level, by int) int {
	level -= by
	if level < 0 {
		return 0
	}
	return level
}

package models

import "fmt"

type ServingStyle int

const (
	Plated ServingStyle = iota
	FamilyStyle
	Buffet
)

var servingStyles = [...]struct{ token, label string }{
	Plated:      {"PLATED", "Plated"},
	FamilyStyle: {"FAMILY_STYLE", "Family Style"},
	Buffet:      {"BUFFET", "Buffet"},
}

func (s ServingStyle) String() string {
	if s < 0 || int(s) >= len(servingStyles) {
		return servingStyles[Plated].label
	}
	return servingStyles[s].label
}

// ParseServingStyle reads a menu token such as "FAMILY_STYLE". Unknown tokens
// fall back to Plated and report false.
func ParseServingStyle(token string) (ServingStyle, bool) {
	token = normalizeToken(token)
	for i, s := range servingStyles {
		if s.token == token {
			return ServingStyle(i), true
		}
	}
	return Plated, false
}

type Appetizer struct {
	Dish
	ServingStyle   ServingStyle
	SpicinessLevel int
	Vegetarian     bool
}

var _ Course = (*Appetizer)(nil)

func NewAppetizer(d Dish, style ServingStyle, spiciness int, vegetarian bool) *Appetizer {
	return &Appetizer{Dish: d, ServingStyle: style, SpicinessLevel: spiciness, Vegetarian: vegetarian}
}

func (a *Appetizer) DietaryAccommodations(request DietaryRequest) {
	if request.Vegetarian {
		a.Vegetarian = true
		a.Ingredients = substituteIngredients(a.Ingredients, nonVegetarianIngredients, vegetarianSubstitutes)
	}
	if request.LowSodium {
		a.SpicinessLevel = lowerLevel(a.SpicinessLevel, 2)
	}
	if request.GlutenFree {
		a.Ingredients = stripIngredients(a.Ingredients, glutenIngredients)
	}
}

func (a *Appetizer) String() string {
	return fmt.Sprintf("%s\nServing Style: %s\nSpiciness Level: %d\nVegetarian: %s",
		a.Dish.String(), a.ServingStyle, a.SpicinessLevel, yesNo(a.Vegetarian))
}

package models

import (
	"fmt"
	"strings"
)

type CookingMethod int

const (
	Grilled CookingMethod = iota
	Baked
	Boiled
	Fried
	Steamed
	Raw
)

var cookingMethods = [...]struct{ token, label string }{
	Grilled: {"GRILLED", "Grilled"},
	Baked:   {"BAKED", "Baked"},
	Boiled:  {"BOILED", "Boiled"},
	Fried:   {"FRIED", "Fried"},
	Steamed: {"STEAMED", "Steamed"},
	Raw:     {"RAW", "Raw"},
}

func (m CookingMethod) String() string {
	if m < 0 || int(m) >= len(cookingMethods) {
		return cookingMethods[Grilled].label
	}
	return cookingMethods[m].label
}

// ParseCookingMethod reads a menu token; unknown tokens are Grilled.
func ParseCookingMethod(token string) (CookingMethod, bool) {
	token = normalizeToken(token)
	for i, m := range cookingMethods {
		if m.token == token {
			return CookingMethod(i), true
		}
	}
	return Grilled, false
}

type SideCategory int

const (
	Grain SideCategory = iota
	PastaSide
	Legume
	BreadSide
	Salad
	Soup
	Starches
	Vegetable
)

var sideCategories = [...]struct{ token, label string }{
	Grain:     {"GRAIN", "Grain"},
	PastaSide: {"PASTA", "Pasta"},
	Legume:    {"LEGUME", "Legume"},
	BreadSide: {"BREAD", "Bread"},
	Salad:     {"SALAD", "Salad"},
	Soup:      {"SOUP", "Soup"},
	Starches:  {"STARCHES", "Starches"},
	Vegetable: {"VEGETABLE", "Vegetable"},
}

func (c SideCategory) String() string {
	if c < 0 || int(c) >= len(sideCategories) {
		return sideCategories[Vegetable].label
	}
	return sideCategories[c].label
}

// ParseSideCategory reads a menu token; unknown tokens are Vegetable.
func ParseSideCategory(token string) (SideCategory, bool) {
	token = normalizeToken(token)
	for i, c := range sideCategories {
		if c.token == token {
			return SideCategory(i), true
		}
	}
	return Vegetable, false
}

// containsGluten is true for side categories removed by a gluten-free request.
func (c SideCategory) containsGluten() bool {
	switch c {
	case Grain, PastaSide, BreadSide, Starches:
		return true
	}
	return false
}

type SideDish struct {
	Name     string
	Category SideCategory
}

type MainCourse struct {
	Dish
	CookingMethod CookingMethod
	ProteinType   string
	SideDishes    []SideDish
	GlutenFree    bool
}

var _ Course = (*MainCourse)(nil)

func NewMainCourse(d Dish, method CookingMethod, protein string, sides []SideDish, glutenFree bool) *MainCourse {
	return &MainCourse{Dish: d, CookingMethod: method, ProteinType: protein, SideDishes: sides, GlutenFree: glutenFree}
}

func (m *MainCourse) AddSideDish(side SideDish) {
	m.SideDishes = append(m.SideDishes, side)
}

func (m *MainCourse) DietaryAccommodations(request DietaryRequest) {
	if request.Vegetarian {
		m.ProteinType = "Tofu"
		m.Ingredients = substituteIngredients(m.Ingredients, nonVegetarianIngredients, vegetarianSubstitutes)
	}
	if request.Vegan {
		m.ProteinType = "Tofu"
		m.Ingredients = stripIngredients(m.Ingredients, dairyAndEggIngredients)
	}
	if request.GlutenFree {
		m.GlutenFree = true
		kept := make([]SideDish, 0, len(m.SideDishes))
		for _, s := range m.SideDishes {
			if !s.Category.containsGluten() {
				kept = append(kept, s)
			}
		}
		m.SideDishes = kept
	}
}

func (m *MainCourse) String() string {
	sides := make([]string, len(m.SideDishes))
	for i, s := range m.SideDishes {
		sides[i] = fmt.Sprintf("%s (Category: %s)", s.Name, s.Category)
	}
	return fmt.Sprintf("%s\nCooking Method: %s\nProtein Type: %s\nSide Dishes: %s\nGluten-Free: %s",
		m.Dish.String(), m.CookingMethod, m.ProteinType, strings.Join(sides, ", "), yesNo(m.GlutenFree))
}

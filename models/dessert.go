package models

import "fmt"

type FlavorProfile int

const (
	Sweet FlavorProfile = iota
	Bitter
	Sour
	Salty
	Umami
)

var flavorProfiles = [...]struct{ token, label string }{
	Sweet:  {"SWEET", "Sweet"},
	Bitter: {"BITTER", "Bitter"},
	Sour:   {"SOUR", "Sour"},
	Salty:  {"SALTY", "Salty"},
	Umami:  {"UMAMI", "Umami"},
}

func (f FlavorProfile) String() string {
	if f < 0 || int(f) >= len(flavorProfiles) {
		return flavorProfiles[Sweet].label
	}
	return flavorProfiles[f].label
}

// ParseFlavorProfile reads a menu token; unknown tokens are Sweet.
func ParseFlavorProfile(token string) (FlavorProfile, bool) {
	token = normalizeToken(token)
	for i, f := range flavorProfiles {
		if f.token == token {
			return FlavorProfile(i), true
		}
	}
	return Sweet, false
}

type Dessert struct {
	Dish
	FlavorProfile  FlavorProfile
	SweetnessLevel int
	ContainsNuts   bool
}

var _ Course = (*Dessert)(nil)

func NewDessert(d Dish, flavor FlavorProfile, sweetness int, nuts bool) *Dessert {
	return &Dessert{Dish: d, FlavorProfile: flavor, SweetnessLevel: sweetness, ContainsNuts: nuts}
}

func (d *Dessert) DietaryAccommodations(request DietaryRequest) {
	if request.NutFree {
		d.ContainsNuts = false
		d.Ingredients = stripIngredients(d.Ingredients, nutIngredients)
	}
	if request.LowSugar {
		d.SweetnessLevel = lowerLevel(d.SweetnessLevel, 3)
	}
	if request.Vegan {
		d.Ingredients = stripIngredients(d.Ingredients, dairyAndEggIngredients)
	}
}

func (d *Dessert) String() string {
	return fmt.Sprintf("%s\nFlavor Profile: %s\nSweetness Level: %d\nContains Nuts: %s",
		d.Dish.String(), d.FlavorProfile, d.SweetnessLevel, yesNo(d.ContainsNuts))
}

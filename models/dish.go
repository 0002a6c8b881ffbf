package models

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// UnknownName is used for dishes whose name fails validation.
const UnknownName = "UNKNOWN"

// Elaborate dishes need at least this many ingredients and minutes of prep.
const (
	ElaborateMinIngredients = 5
	ElaborateMinPrepTime    = 60
)

type Ingredient struct {
	Name             string  `yaml:"name"`
	Quantity         int     `yaml:"quantity"`
	RequiredQuantity int     `yaml:"required_quantity"`
	Price            float64 `yaml:"price"`
}

type Cuisine int

// The zero Cuisine is Other.
const (
	Other Cuisine = iota
	Italian
	Mexican
	Chinese
	Indian
	American
	French
)

var cuisineNames = [...]string{
	Italian:  "ITALIAN",
	Mexican:  "MEXICAN",
	Chinese:  "CHINESE",
	Indian:   "INDIAN",
	American: "AMERICAN",
	French:   "FRENCH",
	Other:    "OTHER",
}

func (c Cuisine) String() string {
	if c < 0 || int(c) >= len(cuisineNames) {
		return cuisineNames[Other]
	}
	return cuisineNames[c]
}

// Cuisines returns every cuisine in report order.
func Cuisines() []Cuisine {
	return []Cuisine{Italian, Mexican, Chinese, Indian, American, French, Other}
}

// ParseCuisine maps a label such as "ITALIAN" onto its Cuisine. Anything it
// does not recognise is Other.
func ParseCuisine(s string) Cuisine {
	s = normalizeToken(s)
	for i, name := range cuisineNames {
		if name == s {
			return Cuisine(i)
		}
	}
	return Other
}

// normalizeToken turns a menu token such as "family style" or "FamilyStyle"
// into the FAMILY_STYLE form the enum tables use.
func normalizeToken(s string) string {
	return strcase.ToScreamingSnake(strings.TrimSpace(s))
}

// Course is anything that can go on the menu: a plain Dish or one of its
// specialisations.
type Course interface {
	Base() *Dish
	DietaryAccommodations(request DietaryRequest)
	String() string
}

var _ Course = (*Dish)(nil)

// Dish holds the fields shared by every course. The name is only settable
// through SetName so it is always validated. A zero Dish has an empty name and
// cuisine Other.
type Dish struct {
	name        string
	Ingredients []Ingredient
	PrepTime    int
	Price       float64
	Cuisine     Cuisine
}

func NewDish(name string, ingredients []Ingredient, prepTime int, price float64, cuisine Cuisine) Dish {
	d := Dish{
		Ingredients: ingredients,
		PrepTime:    prepTime,
		Price:       price,
		Cuisine:     cuisine,
	}
	d.SetName(name)
	return d
}

func (d *Dish) Base() *Dish {
	return d
}

func (d *Dish) Name() string {
	return d.name
}

// SetName stores name if it only contains ASCII letters and whitespace,
// otherwise the dish becomes UnknownName.
func (d *Dish) SetName(name string) {
	if !isValidName(name) {
		d.name = UnknownName
		return
	}
	d.name = name
}

func isValidName(name string) bool {
	for _, r := range name {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case r == ' ', r == '\t', r == '\n', r == '\v', r == '\f', r == '\r':
		default:
			return false
		}
	}
	return true
}

// Equal reports whether two dishes share name, cuisine, prep time and price.
// Ingredients are deliberately not compared.
func (d *Dish) Equal(other *Dish) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.name == other.name &&
		d.Cuisine == other.Cuisine &&
		d.PrepTime == other.PrepTime &&
		d.Price == other.Price
}

func (d *Dish) IngredientNames() []string {
	names := make([]string, len(d.Ingredients))
	for i, ing := range d.Ingredients {
		names[i] = ing.Name
	}
	return names
}

func (d *Dish) IsElaborate() bool {
	return len(d.Ingredients) >= ElaborateMinIngredients && d.PrepTime >= ElaborateMinPrepTime
}

// DietaryAccommodations is a no-op for a plain dish.
func (d *Dish) DietaryAccommodations(_ DietaryRequest) {}

func (d *Dish) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dish Name: %s\n", d.name)
	fmt.Fprintf(&b, "Ingredients: %s\n", strings.Join(d.IngredientNames(), ", "))
	fmt.Fprintf(&b, "Preparation Time: %d minutes\n", d.PrepTime)
	fmt.Fprintf(&b, "Price: $%.2f\n", d.Price)
	fmt.Fprintf(&b, "Cuisine Type: %s", d.Cuisine)
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// IngredientsNamed builds stock-less ingredients from bare names, which is how
// the menu file lists them.
func IngredientsNamed(names ...string) []Ingredient {
	out := make([]Ingredient, 0, len(names))
	for _, n := range names {
		out = append(out, Ingredient{Name: n})
	}
	return out
}

package models

import (
	"strings"
	"testing"
)

func TestSetName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Pad Thai", "Pad Thai"},
		{"Tiramisu", "Tiramisu"},
		{"", ""},
		{"  spaced  out ", "  spaced  out "},
		{"Crème Brûlée", UnknownName},
		{"Tab\tSeparated", "Tab\tSeparated"},
		{"Dish #1", UnknownName},
		{"Fish-and-Chips", UnknownName},
		{"7 Layer Dip", UnknownName},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Dish
			d.SetName(tt.input)
			if d.Name() != tt.want {
				t.Errorf("SetName(%q) -> Name() = %q, want %q", tt.input, d.Name(), tt.want)
			}
		})
	}
}

func TestNewDishValidatesName(t *testing.T) {
	d := NewDish("B0rked", nil, 10, 1.5, Italian)
	if d.Name() != UnknownName {
		t.Errorf("NewDish name = %q, want %q", d.Name(), UnknownName)
	}
}

func TestDishEqualIgnoresIngredients(t *testing.T) {
	a := NewDish("Lasagna", IngredientsNamed("Pasta", "Beef"), 45, 12.5, Italian)
	b := NewDish("Lasagna", IngredientsNamed("Spinach"), 45, 12.5, Italian)
	if !a.Equal(&b) {
		t.Errorf("expected dishes with the same name, cuisine, prep time and price to be equal")
	}

	tests := []struct {
		name   string
		mutate func(d *Dish)
	}{
		{"name", func(d *Dish) { d.SetName("Ravioli") }},
		{"cuisine", func(d *Dish) { d.Cuisine = French }},
		{"prep time", func(d *Dish) { d.PrepTime = 50 }},
		{"price", func(d *Dish) { d.Price = 13 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := a
			tt.mutate(&c)
			if a.Equal(&c) {
				t.Errorf("expected dishes differing by %s to be unequal", tt.name)
			}
		})
	}
}

func TestCuisineLabels(t *testing.T) {
	tests := []struct {
		in   string
		want Cuisine
	}{
		{"ITALIAN", Italian},
		{"mexican", Mexican},
		{" CHINESE ", Chinese},
		{"INDIAN", Indian},
		{"AMERICAN", American},
		{"FRENCH", French},
		{"OTHER", Other},
		{"KLINGON", Other},
	}
	for _, tt := range tests {
		got := ParseCuisine(tt.in)
		if got != tt.want {
			t.Errorf("ParseCuisine(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	var zero Dish
	if zero.Cuisine != Other || zero.Name() != "" {
		t.Errorf("zero Dish = %q/%v, want empty name and OTHER", zero.Name(), zero.Cuisine)
	}

	if got := Cuisine(42).String(); got != "OTHER" {
		t.Errorf("out of range cuisine = %q, want OTHER", got)
	}
	if len(Cuisines()) != 7 {
		t.Errorf("expected 7 cuisines, got %d", len(Cuisines()))
	}
}

func TestIsElaborate(t *testing.T) {
	five := IngredientsNamed("a", "b", "c", "d", "e")
	tests := []struct {
		name        string
		ingredients []Ingredient
		prep        int
		want        bool
	}{
		{"five ingredients one hour", five, 60, true},
		{"four ingredients", five[:4], 90, false},
		{"short prep", five, 59, false},
	}
	for _, tt := range tests {
		d := NewDish("Feast", tt.ingredients, tt.prep, 20, Other)
		if d.IsElaborate() != tt.want {
			t.Errorf("%s: IsElaborate() = %v, want %v", tt.name, d.IsElaborate(), tt.want)
		}
	}
}

func TestDishString(t *testing.T) {
	d := NewDish("Margherita", IngredientsNamed("Dough", "Tomato", "Basil"), 20, 9.5, Italian)
	want := "Dish Name: Margherita\n" +
		"Ingredients: Dough, Tomato, Basil\n" +
		"Preparation Time: 20 minutes\n" +
		"Price: $9.50\n" +
		"Cuisine Type: ITALIAN"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCourseStrings(t *testing.T) {
	base := NewDish("Sampler", IngredientsNamed("Bread"), 10, 5, French)

	app := NewAppetizer(base, FamilyStyle, 3, true)
	des := NewDessert(base, Umami, 4, false)
	main := NewMainCourse(base, Boiled, "Beef", []SideDish{{"Rice", Grain}, {"Greens", Salad}}, false)

	tests := []struct {
		name  string
		c     Course
		parts []string
	}{
		{"appetizer", app, []string{"Serving Style: Family Style", "Spiciness Level: 3", "Vegetarian: Yes"}},
		{"dessert", des, []string{"Flavor Profile: Umami", "Sweetness Level: 4", "Contains Nuts: No"}},
		{"main course", main, []string{"Cooking Method: Boiled", "Protein Type: Beef", "Side Dishes: Rice (Category: Grain), Greens (Category: Salad)", "Gluten-Free: No"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.String()
			if !strings.HasPrefix(got, "Dish Name: Sampler\n") {
				t.Errorf("%s String() should start with the dish block, got %q", tt.name, got)
			}
			for _, p := range tt.parts {
				if !strings.Contains(got, p) {
					t.Errorf("%s String() missing %q, got %q", tt.name, p, got)
				}
			}
		})
	}
}

func TestEnumParsers(t *testing.T) {
	if s, ok := ParseServingStyle("buffet"); !ok || s != Buffet {
		t.Errorf("ParseServingStyle(buffet) = %v, %v", s, ok)
	}
	for _, in := range []string{"FAMILY_STYLE", "family style", "FamilyStyle", "family-style"} {
		if s, ok := ParseServingStyle(in); !ok || s != FamilyStyle {
			t.Errorf("ParseServingStyle(%q) = %v, %v, want FamilyStyle, true", in, s, ok)
		}
	}
	if s, ok := ParseServingStyle("???"); ok || s != Plated {
		t.Errorf("ParseServingStyle(???) = %v, %v, want Plated, false", s, ok)
	}
	if f, ok := ParseFlavorProfile("SALTY"); !ok || f != Salty {
		t.Errorf("ParseFlavorProfile(SALTY) = %v, %v", f, ok)
	}
	if m, ok := ParseCookingMethod("STEAMED"); !ok || m != Steamed {
		t.Errorf("ParseCookingMethod(STEAMED) = %v, %v", m, ok)
	}
	if c, ok := ParseSideCategory("STARCHES"); !ok || c != Starches {
		t.Errorf("ParseSideCategory(STARCHES) = %v, %v", c, ok)
	}
}

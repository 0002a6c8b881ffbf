// Package station tracks kitchen stations: the dishes each one can prepare,
// the ingredient stock it holds, and the ordered manager that owns them.
package station

import (
	"fmt"

	"github.com/dstockto/bistro/catalog"
	"github.com/dstockto/bistro/models"
)

// Station is a named unit of the kitchen. Dishes are referenced through the
// manager's catalog; stock entries are unique by ingredient name.
type Station struct {
	name    string
	catalog *catalog.Catalog
	dishes  []catalog.Ref
	stock   []models.Ingredient
}

func newStation(name string, cat *catalog.Catalog) *Station {
	if name == "" {
		name = models.UnknownName
	}
	return &Station{name: name, catalog: cat}
}

// Name is the station name; empty names become UNKNOWN.
func (s *Station) Name() string {
	return s.name
}

// Dishes returns the assigned courses in assignment order.
func (s *Station) Dishes() []models.Course {
	out := make([]models.Course, 0, len(s.dishes))
	for _, r := range s.dishes {
		if c, ok := s.catalog.Get(r); ok {
			out = append(out, c)
		}
	}
	return out
}

// DishRefs returns the catalog handles of the assigned dishes.
func (s *Station) DishRefs() []catalog.Ref {
	return append([]catalog.Ref(nil), s.dishes...)
}

// IngredientsStock returns a copy of the current stock.
func (s *Station) IngredientsStock() []models.Ingredient {
	return append([]models.Ingredient(nil), s.stock...)
}

func (s *Station) findDish(name string) (*models.Dish, bool) {
	for _, r := range s.dishes {
		c, ok := s.catalog.Get(r)
		if ok && c.Base().Name() == name {
			return c.Base(), true
		}
	}
	return nil, false
}

func (s *Station) stockIndex(name string) int {
	for i := range s.stock {
		if s.stock[i].Name == name {
			return i
		}
	}
	return -1
}

// AssignDish adds the catalog dish behind ref unless a dish with the same name
// is already assigned.
func (s *Station) AssignDish(ref catalog.Ref) error {
	c, ok := s.catalog.Get(ref)
	if !ok {
		return fmt.Errorf("ref %d: %w", ref, ErrUnknownDish)
	}
	name := c.Base().Name()
	if _, exists := s.findDish(name); exists {
		return fmt.Errorf("%s at %s: %w", name, s.name, ErrDuplicateDish)
	}
	s.dishes = append(s.dishes, ref)
	return nil
}

// ReplenishIngredients adds ingredient.Quantity to the matching stock entry,
// or appends the ingredient when the station has none of it yet.
func (s *Station) ReplenishIngredients(ingredient models.Ingredient) {
	if i := s.stockIndex(ingredient.Name); i >= 0 {
		s.stock[i].Quantity += ingredient.Quantity
		return
	}
	s.stock = append(s.stock, ingredient)
}

// CanCompleteOrder reports whether the named dish is assigned here and every
// one of its ingredients is stocked with at least the stock entry's required
// quantity. A dish without ingredients can never be completed.
func (s *Station) CanCompleteOrder(dishName string) bool {
	short, err := s.Shortages(dishName)
	return err == nil && len(short) == 0
}

// Shortages lists the dish's ingredients that are missing from stock or below
// their required quantity, in dish order. A dish without ingredients reports
// ErrInsufficientStock since there is nothing to match against.
func (s *Station) Shortages(dishName string) ([]string, error) {
	d, ok := s.findDish(dishName)
	if !ok {
		return nil, fmt.Errorf("%s at %s: %w", dishName, s.name, ErrDishNotFound)
	}
	if len(d.Ingredients) == 0 {
		return nil, fmt.Errorf("%s has no ingredients: %w", dishName, ErrInsufficientStock)
	}

	var short []string
	for _, ing := range d.Ingredients {
		i := s.stockIndex(ing.Name)
		if i < 0 || s.stock[i].Quantity < s.stock[i].RequiredQuantity {
			short = append(short, ing.Name)
		}
	}
	return short, nil
}

// PrepareDish consumes each matching stock entry's required quantity. Entries
// that land on exactly zero are removed from the station.
func (s *Station) PrepareDish(dishName string) error {
	short, err := s.Shortages(dishName)
	if err != nil {
		return err
	}
	if len(short) > 0 {
		return fmt.Errorf("%s at %s (short: %v): %w", dishName, s.name, short, ErrInsufficientStock)
	}

	d, _ := s.findDish(dishName)
	for _, ing := range d.Ingredients {
		i := s.stockIndex(ing.Name)
		if i < 0 {
			// listed twice in the dish and already used up
			continue
		}
		s.stock[i].Quantity -= s.stock[i].RequiredQuantity
		if s.stock[i].Quantity == 0 {
			s.stock = append(s.stock[:i], s.stock[i+1:]...)
		}
	}
	return nil
}

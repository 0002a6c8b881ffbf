package station

import (
	"errors"
	"fmt"
	"os"

	"github.com/dstockto/bistro/models"
	"gopkg.in/yaml.v3"
)

// ParseLayout decodes a YAML station layout.
func ParseLayout(data []byte) (*models.LayoutFile, error) {
	var l models.LayoutFile
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("yaml layout parsing error: %w", err)
	}
	l.Normalize()
	return &l, nil
}

func LoadLayout(path string) (*models.LayoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLayout(data)
}

// Build adds the layout's stations to m in file order. Dish names resolve
// through m's catalog. Problems are collected so every bad entry is reported
// at once; stations that could be created are kept.
func Build(m *Manager, layout *models.LayoutFile) error {
	if layout == nil {
		return nil
	}

	var errs error
	for _, sl := range layout.Stations {
		s, err := m.AddStation(sl.Name)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		for _, dishName := range sl.Dishes {
			ref, ok := m.catalog.Lookup(dishName)
			if !ok {
				errs = errors.Join(errs, fmt.Errorf("station %s: %s: %w", s.name, dishName, ErrUnknownDish))
				continue
			}
			if err := s.AssignDish(ref); err != nil {
				errs = errors.Join(errs, fmt.Errorf("station %s: %w", s.name, err))
			}
		}
		for _, ing := range sl.Stock {
			s.ReplenishIngredients(ing)
		}
	}
	return errs
}

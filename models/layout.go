package models

import "strings"

// StationLayout describes one station in a layout file: the menu dishes it can
// prepare and its starting ingredient stock.
type StationLayout struct {
	Name   string       `yaml:"name"`
	Dishes []string     `yaml:"dishes"`
	Stock  []Ingredient `yaml:"stock"`
}

// LayoutFile is the on-disk shape of a station layout.
//
//	stations:
//	  - name: Grill
//	    dishes: [Grilled Steak]
//	    stock:
//	      - {name: Beef, quantity: 10, required_quantity: 2, price: 7.5}
type LayoutFile struct {
	Stations []StationLayout `yaml:"stations"`
}

func (s *StationLayout) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	for i := range s.Dishes {
		s.Dishes[i] = strings.TrimSpace(s.Dishes[i])
	}
	for i := range s.Stock {
		s.Stock[i].Name = strings.TrimSpace(s.Stock[i].Name)
	}
}

func (l *LayoutFile) Normalize() {
	for i := range l.Stations {
		l.Stations[i].Normalize()
	}
}

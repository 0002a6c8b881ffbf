package station

import (
	"fmt"

	"github.com/dstockto/bistro/catalog"
	"github.com/dstockto/bistro/models"
	"github.com/rs/zerolog"
)

// Manager keeps stations in an ordered list. Order matters: listings and
// CanCompleteOrder walk stations front to back, and MoveStationToFront
// reorders them. Station names are unique.
type Manager struct {
	catalog  *catalog.Catalog
	stations []*Station
	log      zerolog.Logger
}

type Option func(*Manager)

// WithLogger sets the logger used for debug output of every mutation.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// NewManager returns an empty manager whose stations reference dishes in cat.
// A nil cat gets a fresh catalog.
func NewManager(cat *catalog.Catalog, opts ...Option) *Manager {
	if cat == nil {
		cat = catalog.New()
	}
	m := &Manager{catalog: cat, log: zerolog.Nop()}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Catalog is the dish store every station resolves its handles through.
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

func (m *Manager) Len() int {
	return len(m.stations)
}

// Stations returns the stations in list order.
func (m *Manager) Stations() []*Station {
	return append([]*Station(nil), m.stations...)
}

func (m *Manager) indexOf(name string) int {
	for i, s := range m.stations {
		if s.name == name {
			return i
		}
	}
	return -1
}

// AddStation appends a new, empty station.
func (m *Manager) AddStation(name string) (*Station, error) {
	s := newStation(name, m.catalog)
	if m.indexOf(s.name) >= 0 {
		return nil, fmt.Errorf("%s: %w", s.name, ErrStationExists)
	}
	m.stations = append(m.stations, s)
	m.log.Debug().Str("station", s.name).Int("position", len(m.stations)-1).Msg("station added")
	return s, nil
}

// RemoveStation unlinks the named station.
func (m *Manager) RemoveStation(name string) error {
	i := m.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%s: %w", name, ErrStationNotFound)
	}
	m.stations = append(m.stations[:i], m.stations[i+1:]...)
	m.log.Debug().Str("station", name).Msg("station removed")
	return nil
}

// FindStation returns the named station or ErrStationNotFound.
func (m *Manager) FindStation(name string) (*Station, error) {
	i := m.indexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrStationNotFound)
	}
	return m.stations[i], nil
}

// MoveStationToFront makes the named station the first one tried.
func (m *Manager) MoveStationToFront(name string) error {
	i := m.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%s: %w", name, ErrStationNotFound)
	}
	s := m.stations[i]
	copy(m.stations[1:i+1], m.stations[:i])
	m.stations[0] = s
	m.log.Debug().Str("station", name).Int("from", i).Msg("station moved to front")
	return nil
}

// MergeStations folds from into into: from leaves the list, its dishes are
// assigned to into (same-named dishes are skipped) and its stock is
// replenished into into.
func (m *Manager) MergeStations(into, from string) error {
	if into == from {
		return fmt.Errorf("%s: %w", into, ErrSameStation)
	}
	dst, err := m.FindStation(into)
	if err != nil {
		return err
	}
	src, err := m.FindStation(from)
	if err != nil {
		return err
	}

	i := m.indexOf(from)
	m.stations = append(m.stations[:i], m.stations[i+1:]...)

	moved := 0
	for _, r := range src.dishes {
		if err := dst.AssignDish(r); err == nil {
			moved++
		}
	}
	for _, ing := range src.stock {
		dst.ReplenishIngredients(ing)
	}

	m.log.Debug().
		Str("into", into).
		Str("from", from).
		Int("dishes_moved", moved).
		Int("stock_entries", len(src.stock)).
		Msg("stations merged")
	return nil
}

// AssignDishToStation assigns the catalog dish behind ref to the named station.
func (m *Manager) AssignDishToStation(stationName string, ref catalog.Ref) error {
	s, err := m.FindStation(stationName)
	if err != nil {
		return err
	}
	if err := s.AssignDish(ref); err != nil {
		return err
	}
	m.log.Debug().Str("station", stationName).Int("ref", int(ref)).Msg("dish assigned")
	return nil
}

// ReplenishIngredientAtStation adds stock to the named station.
func (m *Manager) ReplenishIngredientAtStation(stationName string, ingredient models.Ingredient) error {
	s, err := m.FindStation(stationName)
	if err != nil {
		return err
	}
	s.ReplenishIngredients(ingredient)
	m.log.Debug().
		Str("station", stationName).
		Str("ingredient", ingredient.Name).
		Int("quantity", ingredient.Quantity).
		Msg("stock replenished")
	return nil
}

// CanCompleteOrder reports whether any station can complete the dish.
func (m *Manager) CanCompleteOrder(dishName string) bool {
	for _, s := range m.stations {
		if s.CanCompleteOrder(dishName) {
			return true
		}
	}
	return false
}

// StationsFor returns, in list order, every station able to complete the dish.
func (m *Manager) StationsFor(dishName string) []*Station {
	var out []*Station
	for _, s := range m.stations {
		if s.CanCompleteOrder(dishName) {
			out = append(out, s)
		}
	}
	return out
}

// PrepareDishAtStation prepares the dish at the named station. A missing
// station is ErrStationNotFound.
func (m *Manager) PrepareDishAtStation(stationName, dishName string) error {
	s, err := m.FindStation(stationName)
	if err != nil {
		return err
	}
	if err := s.PrepareDish(dishName); err != nil {
		m.log.Debug().Err(err).Str("station", stationName).Str("dish", dishName).Msg("prepare failed")
		return err
	}
	m.log.Debug().Str("station", stationName).Str("dish", dishName).Msg("dish prepared")
	return nil
}

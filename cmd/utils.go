package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dstockto/bistro/catalog"
	"github.com/dstockto/bistro/kitchen"
	"github.com/dstockto/bistro/models"
	"github.com/dstockto/bistro/station"
)

const (
	defaultMenuFile   = "menu.csv"
	defaultLayoutFile = "stations.yaml"
	// DefaultLowStock is the number of remaining uses at or below which a stock
	// entry is flagged when no low_stock entry matches.
	DefaultLowStock = 2
)

// MapToAlias maps a station alias to a station name. If it's not found in the map, it returns the original string.
func MapToAlias(to string) string {
	if Cfg == nil {
		return to
	}
	aliasMap := Cfg.StationAliases
	if aliasMap == nil {
		return to
	}

	for k, v := range aliasMap {
		if strings.EqualFold(k, to) {
			return v
		}
	}

	return to
}

// menuPath resolves the menu CSV: --menu, then config, then ./menu.csv.
func menuPath() string {
	if menuFile != "" {
		return menuFile
	}
	if Cfg != nil && Cfg.MenuFile != "" {
		return Cfg.MenuFile
	}
	return defaultMenuFile
}

// layoutPath resolves the station layout. The layout is optional, so an
// unconfigured default that does not exist yields "".
func layoutPath() string {
	if layoutFile != "" {
		return layoutFile
	}
	if Cfg != nil && Cfg.LayoutFile != "" {
		return Cfg.LayoutFile
	}
	if exists(defaultLayoutFile) {
		return defaultLayoutFile
	}
	return ""
}

func kitchenCapacity() int {
	if Cfg != nil && Cfg.KitchenCapacity > 0 {
		return Cfg.KitchenCapacity
	}
	return kitchen.DefaultCapacity
}

// loadKitchen reads the menu into a new kitchen.
func loadKitchen() (*kitchen.Kitchen, error) {
	k := kitchen.New(kitchen.WithCapacity(kitchenCapacity()), kitchen.WithLogger(Log))
	path := menuPath()
	if err := k.LoadFile(path); err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	Log.Debug().Str("path", path).Int("dishes", k.Len()).Msg("menu loaded")
	return k, nil
}

// newManager registers every course of k in a fresh catalog and returns a
// manager over it. Stations can then name any dish on the menu.
func newManager(k *kitchen.Kitchen) *station.Manager {
	cat := catalog.New()
	for _, c := range k.Dishes() {
		cat.Add(c)
	}
	return station.NewManager(cat, station.WithLogger(Log))
}

// loadManager builds the stations from the layout file on top of the menu.
func loadManager(k *kitchen.Kitchen) (*station.Manager, error) {
	m := newManager(k)
	path := layoutPath()
	if path == "" {
		Log.Debug().Msg("no station layout configured")
		return m, nil
	}

	layout, err := station.LoadLayout(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load station layout: %w", err)
	}
	if err := station.Build(m, layout); err != nil {
		return nil, fmt.Errorf("station layout %s: %w", path, err)
	}
	Log.Debug().Str("path", path).Int("stations", m.Len()).Msg("stations loaded")
	return m, nil
}

// loadAll reads both the menu and the station layout.
func loadAll() (*kitchen.Kitchen, *station.Manager, error) {
	k, err := loadKitchen()
	if err != nil {
		return nil, nil, err
	}
	m, err := loadManager(k)
	if err != nil {
		return nil, nil, err
	}
	return k, m, nil
}

// findStations resolves each argument (aliases allowed) to a station,
// reporting every unknown one together.
func findStations(m *station.Manager, names []string) ([]*station.Station, error) {
	var (
		out  []*station.Station
		errs error
	)
	for _, n := range names {
		s, err := m.FindStation(MapToAlias(n))
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		out = append(out, s)
	}
	return out, errs
}

// ParseCuisineFlag is ParseCuisine that rejects unknown labels instead of
// mapping them to OTHER.
func ParseCuisineFlag(s string) (models.Cuisine, error) {
	c := models.ParseCuisine(s)
	if c == models.Other && !strings.EqualFold(strings.TrimSpace(s), models.Other.String()) {
		return c, fmt.Errorf("unknown cuisine %q", s)
	}
	return c, nil
}

// TruncateFront truncates a string from the front if it exceeds maxLen.
func TruncateFront(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[len(s)-maxLen:]
	}
	return "..." + s[len(s)-maxLen+3:]
}

// Uses is how many times a stock entry can be drawn on before it runs out.
func Uses(ing models.Ingredient) int {
	if ing.RequiredQuantity <= 0 {
		return ing.Quantity
	}
	return ing.Quantity / ing.RequiredQuantity
}

// ResolveLowStock returns the number of remaining uses at or below which an
// ingredient at a station counts as low.
func ResolveLowStock(stationName, ingredient string) int {
	if Cfg == nil || Cfg.LowStock == nil {
		return DefaultLowStock
	}

	lstation := strings.ToLower(strings.TrimSpace(stationName))
	lname := strings.ToLower(strings.TrimSpace(ingredient))

	// First pass: check station::ingredient patterns (more specific)
	for k, v := range Cfg.LowStock {
		lk := strings.ToLower(strings.TrimSpace(k))
		stationPart, namePart, ok := strings.Cut(lk, "::")
		if !ok {
			continue
		}
		if strings.TrimSpace(stationPart) == lstation && strings.TrimSpace(namePart) == lname {
			return v
		}
	}

	// Second pass: ingredient-only fallback
	for k, v := range Cfg.LowStock {
		lk := strings.ToLower(strings.TrimSpace(k))
		if strings.Contains(lk, "::") {
			continue
		}
		if lk == lname {
			return v
		}
	}

	return DefaultLowStock
}

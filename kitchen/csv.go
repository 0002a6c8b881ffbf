package kitchen

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dstockto/bistro/models"
)

// Dish types accepted in the first column of a menu file.
const (
	TypeAppetizer  = "APPETIZER"
	TypeMainCourse = "MAINCOURSE"
	TypeDessert    = "DESSERT"
	TypeDish       = "DISH"
)

// ErrKitchenFull is returned when a menu file holds more rows than the
// kitchen has room for.
var ErrKitchenFull = errors.New("kitchen is full")

// LoadFile reads the menu CSV at path into k.
func (k *Kitchen) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := k.LoadCSV(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadCSV reads menu rows from r. The first line is a header and is skipped.
// Each row is
//
//	TYPE,name,ing1;ing2;...,prepTime,price,CUISINE,attr1;attr2;...
//
// with attributes depending on TYPE:
//
//	APPETIZER   style;spiciness;vegetarian
//	MAINCOURSE  method;protein;side:CATEGORY|side:CATEGORY;glutenFree
//	DESSERT     flavor;sweetness;containsNuts
//	DISH        (none)
//
// Loading stops at the first malformed row. Rows of an unknown type are
// skipped.
func (k *Kitchen) LoadCSV(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header := true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line, _ := cr.FieldPos(0)
		if header {
			header = false
			continue
		}
		if isBlank(record) {
			continue
		}

		course, err := parseRecord(record)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if course == nil {
			k.log.Warn().Int("line", line).Str("type", record[0]).Msg("skipping unknown dish type")
			continue
		}
		if !k.NewOrder(course) {
			return fmt.Errorf("line %d: %w (capacity %d)", line, ErrKitchenFull, k.capacity)
		}
		k.log.Debug().Int("line", line).Str("dish", course.Base().Name()).Msg("loaded dish")
	}
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// splitList splits a semicolon (or other sep) delimited field, dropping
// empty items.
func splitList(field, sep string) []string {
	var out []string
	for _, item := range strings.Split(field, sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func field(record []string, i int) string {
	if i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}

func parseRecord(record []string) (models.Course, error) {
	if len(record) < 6 {
		return nil, fmt.Errorf("expected at least 6 fields, got %d", len(record))
	}

	prepTime, err := strconv.Atoi(field(record, 3))
	if err != nil {
		return nil, fmt.Errorf("invalid prep time %q: %w", field(record, 3), err)
	}
	price, err := strconv.ParseFloat(field(record, 4), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", field(record, 4), err)
	}

	base := models.NewDish(
		field(record, 1),
		models.IngredientsNamed(splitList(field(record, 2), ";")...),
		prepTime,
		price,
		models.ParseCuisine(field(record, 5)),
	)
	attrs := strings.Split(field(record, 6), ";")

	switch strings.ToUpper(field(record, 0)) {
	case TypeAppetizer:
		return parseAppetizer(base, attrs)
	case TypeMainCourse:
		return parseMainCourse(base, attrs)
	case TypeDessert:
		return parseDessert(base, attrs)
	case TypeDish:
		return &base, nil
	}
	return nil, nil
}

func needAttrs(kind string, attrs []string, n int) error {
	if len(attrs) < n {
		return fmt.Errorf("%s needs %d attributes, got %d", kind, n, len(attrs))
	}
	return nil
}

func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

func parseLevel(kind, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", kind, s, err)
	}
	return v, nil
}

func parseAppetizer(base models.Dish, attrs []string) (models.Course, error) {
	if err := needAttrs(TypeAppetizer, attrs, 3); err != nil {
		return nil, err
	}
	style, _ := models.ParseServingStyle(attrs[0])
	spiciness, err := parseLevel("spiciness", attrs[1])
	if err != nil {
		return nil, err
	}
	return models.NewAppetizer(base, style, spiciness, parseBool(attrs[2])), nil
}

func parseDessert(base models.Dish, attrs []string) (models.Course, error) {
	if err := needAttrs(TypeDessert, attrs, 3); err != nil {
		return nil, err
	}
	flavor, _ := models.ParseFlavorProfile(attrs[0])
	sweetness, err := parseLevel("sweetness", attrs[1])
	if err != nil {
		return nil, err
	}
	return models.NewDessert(base, flavor, sweetness, parseBool(attrs[2])), nil
}

func parseMainCourse(base models.Dish, attrs []string) (models.Course, error) {
	if err := needAttrs(TypeMainCourse, attrs, 4); err != nil {
		return nil, err
	}
	method, ok := models.ParseCookingMethod(attrs[0])
	if !ok {
		return nil, fmt.Errorf("unknown cooking method %q", attrs[0])
	}

	var sides []models.SideDish
	for _, item := range splitList(attrs[2], "|") {
		name, cat, found := strings.Cut(item, ":")
		if !found {
			return nil, fmt.Errorf("side dish %q is missing a category", item)
		}
		category, ok := models.ParseSideCategory(cat)
		if !ok {
			return nil, fmt.Errorf("unknown side dish category %q", cat)
		}
		sides = append(sides, models.SideDish{Name: strings.TrimSpace(name), Category: category})
	}

	return models.NewMainCourse(base, method, strings.TrimSpace(attrs[1]), sides, parseBool(attrs[3])), nil
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dstockto/bistro/models"
)

func TestMapToAlias(t *testing.T) {
	// Setup Cfg for testing
	oldCfg := Cfg
	defer func() { Cfg = oldCfg }()

	Cfg = &Config{
		StationAliases: map[string]string{
			"G": "Grill",
			"p": "Pastry",
		},
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"G", "Grill"},
		{"g", "Grill"},
		{"P", "Pastry"},
		{"p", "Pastry"},
		{"F", "F"},
		{"", ""},
		{"Grill", "Grill"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual := MapToAlias(tt.input)
			if actual != tt.expected {
				t.Errorf("MapToAlias(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestMapToAliasWithoutConfig(t *testing.T) {
	oldCfg := Cfg
	defer func() { Cfg = oldCfg }()
	Cfg = nil

	if got := MapToAlias("G"); got != "G" {
		t.Errorf("MapToAlias(%q) = %q, want %q", "G", got, "G")
	}
}

func TestResolveLowStock(t *testing.T) {
	oldCfg := Cfg
	defer func() { Cfg = oldCfg }()

	Cfg = &Config{
		LowStock: map[string]int{
			"Beef":          4,
			"grill::beef":   6,
			"Pastry::Flour": 10,
		},
	}

	tests := []struct {
		station    string
		ingredient string
		expected   int
	}{
		{"Grill", "Beef", 6},
		{"Fry", "Beef", 4},
		{"Fry", "beef", 4},
		{"Pastry", "Flour", 10},
		{"Grill", "Flour", DefaultLowStock},
		{"Grill", "Salt", DefaultLowStock},
	}

	for _, tt := range tests {
		got := ResolveLowStock(tt.station, tt.ingredient)
		if got != tt.expected {
			t.Errorf("ResolveLowStock(%q, %q) = %d, want %d", tt.station, tt.ingredient, got, tt.expected)
		}
	}
}

func TestUses(t *testing.T) {
	tests := []struct {
		ing      models.Ingredient
		expected int
	}{
		{models.Ingredient{Quantity: 10, RequiredQuantity: 2}, 5},
		{models.Ingredient{Quantity: 7, RequiredQuantity: 2}, 3},
		{models.Ingredient{Quantity: 1, RequiredQuantity: 2}, 0},
		{models.Ingredient{Quantity: 4}, 4},
	}

	for _, tt := range tests {
		if got := Uses(tt.ing); got != tt.expected {
			t.Errorf("Uses(%+v) = %d, want %d", tt.ing, got, tt.expected)
		}
	}
}

func TestParseCuisineFlag(t *testing.T) {
	tests := []struct {
		input   string
		want    models.Cuisine
		wantErr bool
	}{
		{"ITALIAN", models.Italian, false},
		{"french", models.French, false},
		{" other ", models.Other, false},
		{"Klingon", models.Other, true},
	}

	for _, tt := range tests {
		got, err := ParseCuisineFlag(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCuisineFlag(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseCuisineFlag(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestPaths(t *testing.T) {
	oldCfg, oldMenu, oldLayout := Cfg, menuFile, layoutFile
	defer func() { Cfg, menuFile, layoutFile = oldCfg, oldMenu, oldLayout }()
	chdir(t, t.TempDir())

	Cfg, menuFile, layoutFile = nil, "", ""
	if got := menuPath(); got != defaultMenuFile {
		t.Errorf("menuPath() = %q, want %q", got, defaultMenuFile)
	}
	if got := layoutPath(); got != "" {
		t.Errorf("layoutPath() = %q, want empty without a layout file", got)
	}

	if err := os.WriteFile(defaultLayoutFile, []byte("stations: []\n"), 0o644); err != nil {
		t.Fatalf("failed to write layout: %v", err)
	}
	if got := layoutPath(); got != defaultLayoutFile {
		t.Errorf("layoutPath() = %q, want %q", got, defaultLayoutFile)
	}

	Cfg = &Config{MenuFile: "winter.csv", LayoutFile: "winter.yaml"}
	if got := menuPath(); got != "winter.csv" {
		t.Errorf("menuPath() = %q, want %q", got, "winter.csv")
	}
	if got := layoutPath(); got != "winter.yaml" {
		t.Errorf("layoutPath() = %q, want %q", got, "winter.yaml")
	}

	menuFile, layoutFile = "flag.csv", filepath.Join("x", "flag.yaml")
	if got := menuPath(); got != "flag.csv" {
		t.Errorf("menuPath() = %q, want %q", got, "flag.csv")
	}
	if got := layoutPath(); got != filepath.Join("x", "flag.yaml") {
		t.Errorf("layoutPath() = %q, want %q", got, filepath.Join("x", "flag.yaml"))
	}
}

func TestTruncateFront(t *testing.T) {
	tests := []struct {
		s        string
		maxLen   int
		expected string
	}{
		{"Hello World", 20, "Hello World"},
		{"Hello World", 11, "Hello World"},
		{"Hello World", 10, "...o World"},
		{"Hello World", 5, "...ld"},
		{"Hello World", 3, "rld"},
		{"Hello World", 2, "ld"},
	}

	for _, tt := range tests {
		got := TruncateFront(tt.s, tt.maxLen)
		if got != tt.expected {
			t.Errorf("TruncateFront(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.expected)
		}
	}
}

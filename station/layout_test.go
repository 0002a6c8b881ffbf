package station

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dstockto/bistro/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLayout = `
stations:
  - name: Grill
    dishes: [Burger, " Steak "]
    stock:
      - {name: Beef, quantity: 10, required_quantity: 2, price: 7.5}
      - {name: Bun, quantity: 4, required_quantity: 1}
  - name: Pastry
    dishes: [Tart, Unicorn Cake]
  - name: Grill
`

func TestParseAndBuildLayout(t *testing.T) {
	layout, err := ParseLayout([]byte(sampleLayout))
	require.NoError(t, err)
	require.Len(t, layout.Stations, 3)
	assert.Equal(t, "Steak", layout.Stations[0].Dishes[1])

	m := NewManager(nil)
	m.Catalog().Add(course("Burger", "Beef", "Bun"))
	m.Catalog().Add(course("Steak", "Beef"))
	m.Catalog().Add(course("Tart", "Flour"))

	err = Build(m, layout)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDish)
	assert.ErrorIs(t, err, ErrStationExists)

	assert.Equal(t, []string{"Grill", "Pastry"}, names(m.Stations()))
	grill, err := m.FindStation("Grill")
	require.NoError(t, err)
	assert.Len(t, grill.Dishes(), 2)
	assert.Equal(t, []models.Ingredient{
		{Name: "Beef", Quantity: 10, RequiredQuantity: 2, Price: 7.5},
		{Name: "Bun", Quantity: 4, RequiredQuantity: 1},
	}, grill.IngredientsStock())
	assert.True(t, m.CanCompleteOrder("Burger"))
}

func TestLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleLayout), 0644))

	layout, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, "Pastry", layout.Stations[1].Name)

	_, err = LoadLayout(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseLayout([]byte("stations: [oops"))
	assert.Error(t, err)
}

func TestBuildNilLayout(t *testing.T) {
	assert.NoError(t, Build(NewManager(nil), nil))
}

package kitchen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dstockto/bistro/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMenu = `type,name,ingredients,prep,price,cuisine,attributes
APPETIZER,Bruschetta,Bread;Tomato;Basil,10,7.50,ITALIAN,PLATED;2;true
MAINCOURSE,Grilled Steak,Beef;Salt;Pepper;Butter;Garlic,60,24.99,AMERICAN,GRILLED;Beef;Fries:STARCHES|Greens:SALAD;false
DESSERT,Tiramisu,Eggs;Cream;Coffee,30,8,ITALIAN,SWEET;8;false
DISH,Plain Rice,Rice,15,3,CHINESE
`

func TestLoadCSV(t *testing.T) {
	k := New()
	require.NoError(t, k.LoadCSV(strings.NewReader(sampleMenu)))
	require.Equal(t, 4, k.Len())

	dishes := k.Dishes()

	app, ok := dishes[0].(*models.Appetizer)
	require.True(t, ok)
	assert.Equal(t, "Bruschetta", app.Name())
	assert.Equal(t, models.Plated, app.ServingStyle)
	assert.Equal(t, 2, app.SpicinessLevel)
	assert.True(t, app.Vegetarian)
	assert.Equal(t, []string{"Bread", "Tomato", "Basil"}, app.IngredientNames())

	mc, ok := dishes[1].(*models.MainCourse)
	require.True(t, ok)
	assert.Equal(t, models.Grilled, mc.CookingMethod)
	assert.Equal(t, "Beef", mc.ProteinType)
	assert.Equal(t, []models.SideDish{
		{Name: "Fries", Category: models.Starches},
		{Name: "Greens", Category: models.Salad},
	}, mc.SideDishes)
	assert.False(t, mc.GlutenFree)
	assert.Equal(t, 24.99, mc.Price)
	assert.Equal(t, models.American, mc.Cuisine)

	des, ok := dishes[2].(*models.Dessert)
	require.True(t, ok)
	assert.Equal(t, models.Sweet, des.FlavorProfile)
	assert.Equal(t, 8, des.SweetnessLevel)

	plain, ok := dishes[3].(*models.Dish)
	require.True(t, ok)
	assert.Equal(t, "Plain Rice", plain.Name())

	assert.Equal(t, 1, k.ElaborateDishCount())
	assert.Equal(t, 25.0, k.ElaboratePercentage())
}

func TestLoadCSVErrors(t *testing.T) {
	header := "type,name,ingredients,prep,price,cuisine,attributes\n"
	tests := []struct {
		name string
		rows string
		want string
	}{
		{"bad prep time", "DISH,Soup,Water,ten,3,FRENCH\n", "line 2: invalid prep time"},
		{"bad price", "DISH,Soup,Water,10,free,FRENCH\n", "line 2: invalid price"},
		{"bad spiciness", "APPETIZER,Wings,Chicken,10,5,AMERICAN,PLATED;hot;false\n", "line 2: invalid spiciness"},
		{"missing attrs", "DESSERT,Cake,Flour,10,5,FRENCH,SWEET\n", "line 2: DESSERT needs 3 attributes"},
		{"short row", "DISH,Soup\n", "line 2: expected at least 6 fields"},
		{"side without category", "DISH,Soup,Water,10,3,FRENCH\nMAINCOURSE,Stew,Beef,10,3,FRENCH,BOILED;Beef;Bread;false\n", "line 3: side dish"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().LoadCSV(strings.NewReader(header + tt.rows))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadCSVSkipsUnknownTypes(t *testing.T) {
	var logs bytes.Buffer
	k := New(WithLogger(zerolog.New(&logs)))

	menu := "type,name,ingredients,prep,price,cuisine,attributes\n" +
		"SOUP,Minestrone,Beans;Pasta,20,6,ITALIAN,\n" +
		"\n" +
		"DISH,Bread,Flour,5,2,FRENCH\n"
	require.NoError(t, k.LoadCSV(strings.NewReader(menu)))
	assert.Equal(t, 1, k.Len())
	assert.Contains(t, logs.String(), `"type":"SOUP"`)
	assert.Contains(t, logs.String(), "skipping unknown dish type")
}

func TestLoadCSVBareQuotes(t *testing.T) {
	menu := "type,name,ingredients,prep,price,cuisine,attributes\n" +
		"DISH,Nachos,Chips;\"Hot\" Salsa,10,6,MEXICAN\n"
	k := New()
	require.NoError(t, k.LoadCSV(strings.NewReader(menu)))
	require.Equal(t, 1, k.Len())
	assert.Equal(t, []string{"Chips", `"Hot" Salsa`}, k.Dishes()[0].Base().IngredientNames())
}

func TestLoadCSVCapacity(t *testing.T) {
	k := New(WithCapacity(1))
	err := k.LoadCSV(strings.NewReader(sampleMenu))
	assert.ErrorIs(t, err, ErrKitchenFull)
	assert.Equal(t, 1, k.Len())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleMenu), 0o644))

	k := New()
	require.NoError(t, k.LoadFile(path))
	assert.Equal(t, 4, k.Len())

	err := New().LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

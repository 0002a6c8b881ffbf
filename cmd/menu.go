package cmd

import (
	"fmt"
	"os"

	"github.com/dstockto/bistro/kitchen"
	"github.com/dstockto/bistro/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// menuCmd prints the menu, optionally adjusted for dietary requests
var menuCmd = &cobra.Command{
	Use:     "menu",
	Short:   "Show the menu, adjusted for any dietary requests",
	Long:    "Print every dish on the menu. Dietary flags rewrite the dishes before they are shown.",
	Aliases: []string{"m", "dishes"},
	RunE:    runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	k, err := loadKitchen()
	if err != nil {
		return err
	}

	k.DietaryAdjustment(dietaryRequest(cmd))

	cuisine, err := cmd.Flags().GetString("cuisine")
	if err != nil {
		return fmt.Errorf("failed to get cuisine flag: %w", err)
	}
	if cuisine != "" {
		c, err := ParseCuisineFlag(cuisine)
		if err != nil {
			return err
		}
		k = filterCuisine(k, c)
	}

	header := fmt.Sprintf("Dishes on the menu: %d\n", k.Len())
	if k.Len() == 0 {
		color.HiRed(header)
		return nil
	}
	color.Green(header)

	return k.DisplayMenu(os.Stdout)
}

// filterCuisine returns a kitchen holding only the courses of k that belong to
// cuisine.
func filterCuisine(k *kitchen.Kitchen, cuisine models.Cuisine) *kitchen.Kitchen {
	out := kitchen.New(kitchen.WithCapacity(k.Capacity()))
	for _, c := range k.Dishes() {
		if c.Base().Cuisine == cuisine {
			out.NewOrder(c)
		}
	}
	return out
}

func addDietaryFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("vegetarian", false, "swap meat for vegetarian substitutes")
	cmd.Flags().Bool("vegan", false, "remove dairy and eggs")
	cmd.Flags().Bool("low-sodium", false, "tone down spicy appetizers")
	cmd.Flags().Bool("gluten-free", false, "remove gluten ingredients and side dishes")
	cmd.Flags().Bool("nut-free", false, "remove nuts from desserts")
	cmd.Flags().Bool("low-sugar", false, "make desserts less sweet")
}

func dietaryRequest(cmd *cobra.Command) models.DietaryRequest {
	flag := func(name string) bool {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	return models.DietaryRequest{
		Vegetarian: flag("vegetarian"),
		Vegan:      flag("vegan"),
		LowSodium:  flag("low-sodium"),
		GlutenFree: flag("gluten-free"),
		NutFree:    flag("nut-free"),
		LowSugar:   flag("low-sugar"),
	}
}

func init() {
	rootCmd.AddCommand(menuCmd)

	addDietaryFlags(menuCmd)
	menuCmd.Flags().StringP("cuisine", "c", "", "only show dishes of this cuisine, e.g. ITALIAN")
}

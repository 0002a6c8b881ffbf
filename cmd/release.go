package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// releaseCmd serves dishes off the menu and reports what is left
var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Release quick dishes or a whole cuisine and report what remains",
	Long: `Release dishes from the kitchen, either those quicker than --below minutes or
every dish of --cuisine, then print the report for the dishes that remain.
The menu file itself is not changed.`,
	RunE: runRelease,
}

func runRelease(cmd *cobra.Command, args []string) error {
	below, err := cmd.Flags().GetInt("below")
	if err != nil {
		return fmt.Errorf("failed to get below flag: %w", err)
	}
	cuisine, err := cmd.Flags().GetString("cuisine")
	if err != nil {
		return fmt.Errorf("failed to get cuisine flag: %w", err)
	}
	if below <= 0 && cuisine == "" {
		return errors.New("nothing to release: pass --below or --cuisine")
	}

	k, err := loadKitchen()
	if err != nil {
		return err
	}

	if below > 0 {
		n := k.ReleaseDishesBelowPrepTime(below)
		color.Yellow("Released %d dish(es) quicker than %d minutes\n", n, below)
	}
	if cuisine != "" {
		c, err := ParseCuisineFlag(cuisine)
		if err != nil {
			return err
		}
		n := k.ReleaseDishesOfCuisine(c)
		color.Yellow("Released %d %s dish(es)\n", n, c)
	}
	fmt.Println()

	return k.Report(os.Stdout)
}

func init() {
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().IntP("below", "b", 0, "release dishes with a prep time below this many minutes")
	releaseCmd.Flags().StringP("cuisine", "c", "", "release every dish of this cuisine")
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// reportCmd prints the cuisine tally and menu statistics
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report dishes per cuisine, average prep time and elaborate share",
	Long: `Report how many dishes each cuisine has, the average preparation time and
the share of elaborate dishes (at least 5 ingredients and 60 minutes).`,
	Aliases: []string{"stats"},
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := loadKitchen()
		if err != nil {
			return err
		}
		k.DietaryAdjustment(dietaryRequest(cmd))

		return k.Report(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	addDietaryFlags(reportCmd)
}

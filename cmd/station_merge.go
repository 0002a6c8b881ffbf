package cmd

import (
	"errors"
	"os"

	"github.com/dstockto/bistro/station"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var stationMergeCmd = &cobra.Command{
	Use:   "merge <into> <from>...",
	Short: "Merge stations into another, combining their dishes and stock",
	Long: `Merge one or more stations into another. The merged stations are removed;
their dishes move to the remaining station (dishes it already has are skipped)
and their stock is added to its stock.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, m, err := loadAll()
		if err != nil {
			return err
		}

		into := MapToAlias(args[0])
		var errs error
		for _, from := range args[1:] {
			from = MapToAlias(from)
			if err := m.MergeStations(into, from); err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			color.Green("Merged %s into %s\n", from, into)
		}

		if s, err := m.FindStation(into); err == nil {
			renderStations(os.Stdout, []*station.Station{s})
		}
		return errs
	},
}

func init() {
	stationCmd.AddCommand(stationMergeCmd)
}

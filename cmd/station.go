package cmd

import (
	"github.com/spf13/cobra"
)

// stationCmd groups the commands that work the kitchen stations
var stationCmd = &cobra.Command{
	Use:     "station",
	Aliases: []string{"st", "stations"},
	Short:   "Work the kitchen stations described by the station layout",
	Long: `Work the kitchen stations described by the station layout file.

Stations are read from layout_file (or --layout) and hold dishes from the menu
together with their ingredient stock. Station names accept the aliases from
station_aliases in the config.`,
}

func init() {
	rootCmd.AddCommand(stationCmd)
}

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var stationFrontCmd = &cobra.Command{
	Use:   "front <station>",
	Short: "Move a station to the front so it is tried first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, m, err := loadAll()
		if err != nil {
			return err
		}

		name := MapToAlias(args[0])
		if err := m.MoveStationToFront(name); err != nil {
			return err
		}
		color.Green("%s moved to the front\n", name)
		for i, s := range m.Stations() {
			fmt.Printf("%2d) %s\n", i+1, s.Name())
		}
		return nil
	},
}

func init() {
	stationCmd.AddCommand(stationFrontCmd)
}

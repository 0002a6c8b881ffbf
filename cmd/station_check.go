package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dstockto/bistro/station"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var stationCheckCmd = &cobra.Command{
	Use:   "check <dish>...",
	Short: "Check whether any station has the stock to prepare a dish",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, m, err := loadAll()
		if err != nil {
			return err
		}
		for _, dish := range args {
			checkDish(os.Stdout, m, dish)
		}
		return nil
	},
}

// checkDish reports the stations able to prepare dish, or why none can.
func checkDish(w io.Writer, m *station.Manager, dish string) {
	if m.CanCompleteOrder(dish) {
		var names []string
		for _, s := range m.StationsFor(dish) {
			names = append(names, s.Name())
		}
		_, _ = fmt.Fprintln(w, color.GreenString("%s: can be prepared at %s", dish, strings.Join(names, ", ")))
		return
	}

	_, _ = fmt.Fprintln(w, color.HiRedString("%s: cannot be prepared", dish))
	assigned := false
	for _, s := range m.Stations() {
		short, err := s.Shortages(dish)
		if errors.Is(err, station.ErrDishNotFound) {
			continue
		}
		assigned = true
		if errors.Is(err, station.ErrInsufficientStock) {
			_, _ = fmt.Fprintf(w, "  %s: dish has no ingredients\n", s.Name())
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s: short on %s\n", s.Name(), strings.Join(short, ", "))
	}
	if !assigned {
		_, _ = fmt.Fprintln(w, "  not assigned to any station")
	}
}

func init() {
	stationCmd.AddCommand(stationCheckCmd)
}

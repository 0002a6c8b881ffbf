package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dstockto/bistro/station"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var stationPrepareCmd = &cobra.Command{
	Use:   "prepare <dish> [station]",
	Short: "Prepare a dish at a station, drawing down its ingredient stock",
	Long: `Prepare a dish at a station, drawing down its ingredient stock.

Without a station, the dish goes to a station that can complete it. When more
than one can, you are asked to pick one (or the first in station order is used
when not interactive). Stock changes are not written back to the layout file.`,
	Args:    cobra.RangeArgs(1, 2),
	Aliases: []string{"cook", "p"},
	RunE:    runStationPrepare,
}

func runStationPrepare(cmd *cobra.Command, args []string) error {
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	simple, _ := cmd.Flags().GetBool("simple-select")
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return fmt.Errorf("failed to get count flag: %w", err)
	}
	if count < 1 {
		return errors.New("count must be at least 1")
	}

	_, m, err := loadAll()
	if err != nil {
		return err
	}

	dish := args[0]
	var s *station.Station
	if len(args) == 2 {
		s, err = m.FindStation(MapToAlias(args[1]))
		if err != nil {
			return err
		}
	} else {
		var canceled bool
		s, canceled, err = pickStation(m, dish, isInteractiveAllowed(nonInteractive), simple)
		if err != nil {
			return err
		}
		if canceled {
			fmt.Println("Canceled.")
			return nil
		}
	}

	made, err := prepareAt(os.Stdout, m, s.Name(), dish, count)
	if made > 0 {
		fmt.Println()
		renderStations(os.Stdout, []*station.Station{s})
	}
	return err
}

// pickStation chooses the station that prepares dish when none was named.
func pickStation(m *station.Manager, dish string, interactive, simple bool) (*station.Station, bool, error) {
	candidates := m.StationsFor(dish)
	switch {
	case len(candidates) == 0:
		return nil, false, fmt.Errorf("%s: no station can prepare it: %w", dish, station.ErrInsufficientStock)
	case len(candidates) == 1 || !interactive:
		if len(candidates) > 1 {
			Log.Info().Str("dish", dish).Str("station", candidates[0].Name()).Msg("several stations can prepare the dish; using the first")
		}
		return candidates[0], false, nil
	}
	return selectStationInteractively(candidates, dish, simple)
}

// prepareAt prepares dish count times, stopping at the first failure. It
// returns how many were made.
func prepareAt(w io.Writer, m *station.Manager, stationName, dish string, count int) (int, error) {
	made := 0
	for made < count {
		if err := m.PrepareDishAtStation(stationName, dish); err != nil {
			if made > 0 {
				_, _ = fmt.Fprintln(w, color.YellowString("Prepared %d of %d %s at %s", made, count, dish, stationName))
			}
			return made, err
		}
		made++
	}
	_, _ = fmt.Fprintln(w, color.GreenString("Prepared %d %s at %s", made, dish, stationName))
	return made, nil
}

func init() {
	stationCmd.AddCommand(stationPrepareCmd)

	stationPrepareCmd.Flags().IntP("count", "n", 1, "how many to prepare")
	stationPrepareCmd.Flags().Bool("non-interactive", false, "never prompt; use the first capable station")
	stationPrepareCmd.Flags().Bool("simple-select", false, "use a numbered list instead of the searchable picker")
}

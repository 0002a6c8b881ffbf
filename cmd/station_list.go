package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dstockto/bistro/models"
	"github.com/dstockto/bistro/station"
	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

const (
	gaugeWidth   = 10
	nameColWidth = 16
)

var (
	stationTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5A623"))
	labelStyle        = lipgloss.NewStyle().Faint(true)
	lowStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D7263D"))

	gaugeEmpty, _ = colorful.Hex("#D7263D")
	gaugeFull, _  = colorful.Hex("#2BB673")
)

var stationListCmd = &cobra.Command{
	Use:     "list [station...]",
	Aliases: []string{"ls"},
	Short:   "List stations with their dishes and ingredient stock",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, m, err := loadAll()
		if err != nil {
			return err
		}

		stations := m.Stations()
		if len(args) > 0 {
			stations, err = findStations(m, args)
			if err != nil {
				return err
			}
		}

		if len(stations) == 0 {
			color.HiRed("No stations found.\n")
			return nil
		}
		renderStations(os.Stdout, stations)
		return nil
	},
}

// render applies style unless color output is disabled.
func render(style lipgloss.Style, s string) string {
	if color.NoColor {
		return s
	}
	return style.Render(s)
}

// stockGauge draws how full a stock entry is relative to its low mark. The
// fill colour blends from red when empty to green when full.
func stockGauge(uses, low int) string {
	full := 3 * low
	ratio := 1.0
	if full > 0 {
		ratio = float64(uses) / float64(full)
	} else if uses <= 0 {
		ratio = 0
	}
	ratio = math.Max(0, math.Min(ratio, 1))

	filled := int(ratio*gaugeWidth + 0.5)
	bar := strings.Repeat("█", filled)
	rest := strings.Repeat("░", gaugeWidth-filled)
	if color.NoColor {
		return bar + rest
	}
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(gaugeEmpty.BlendLab(gaugeFull, ratio).Clamped().Hex()))
	return fill.Render(bar) + labelStyle.Render(rest)
}

func stockLine(stationName string, ing models.Ingredient) string {
	uses := Uses(ing)
	low := ResolveLowStock(stationName, ing.Name)
	line := fmt.Sprintf("    %-*s %4d (uses %d each) %s %d left",
		nameColWidth, TruncateFront(ing.Name, nameColWidth), ing.Quantity, ing.RequiredQuantity, stockGauge(uses, low), uses)
	if uses <= low {
		line += " " + render(lowStyle, "LOW")
	}
	return line
}

func renderStations(w io.Writer, stations []*station.Station) {
	for i, s := range stations {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintln(w, render(stationTitleStyle, s.Name()))

		var dishNames []string
		for _, c := range s.Dishes() {
			dishNames = append(dishNames, c.Base().Name())
		}
		dishes := "(none)"
		if len(dishNames) > 0 {
			dishes = strings.Join(dishNames, ", ")
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", render(labelStyle, "Dishes:"), dishes)

		stock := s.IngredientsStock()
		if len(stock) == 0 {
			_, _ = fmt.Fprintf(w, "  %s (none)\n", render(labelStyle, "Stock:"))
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s\n", render(labelStyle, "Stock:"))
		for _, ing := range stock {
			_, _ = fmt.Fprintln(w, stockLine(s.Name(), ing))
		}
	}
}

func init() {
	stationCmd.AddCommand(stationListCmd)
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/dstockto/bistro/kitchen"
	"github.com/dstockto/bistro/models"
	"github.com/dstockto/bistro/station"
	"github.com/fatih/color"
	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"
)

const shellHelp = `Commands (quote names with spaces, e.g. assign Grill "Grilled Steak"):
  report                               cuisine tally and statistics
  menu [CUISINE]                       show the menu
  diet <request>...                    apply vegetarian, vegan, low-sodium,
                                       gluten-free, nut-free or low-sugar
  release below <minutes>              release dishes quicker than minutes
  release cuisine <CUISINE>            release every dish of a cuisine
  stations [station...]                list stations and stock
  add <station>                        add an empty station
  remove <station>                     remove a station
  assign <station> <dish>              assign a menu dish to a station
  stock <station> <ingredient> <qty> [required] [price]
                                       add ingredient stock to a station
  check <dish>                         which stations can prepare a dish
  prepare <dish> [station]             prepare a dish
  merge <into> <from>                  merge from into into
  front <station>                      move a station to the front
  help                                 this text
  quit                                 leave the shell`

var errUsage = errors.New("usage")

// session is the kitchen state a shell works on. Nothing is written back to
// the menu or layout files.
type session struct {
	kitchen *kitchen.Kitchen
	manager *station.Manager
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open an interactive shell over the menu and stations",
	Long: `Open an interactive shell over the menu and stations. Changes made in the
shell (stock, merges, prepared dishes) last until the shell exits.`,
	Aliases: []string{"sh", "repl"},
	RunE: func(cmd *cobra.Command, args []string) error {
		k, m, err := loadAll()
		if err != nil {
			return err
		}
		return runShell(&session{kitchen: k, manager: m})
	},
}

func shellCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("report"),
		readline.PcItem("menu"),
		readline.PcItem("diet",
			readline.PcItem("vegetarian"), readline.PcItem("vegan"), readline.PcItem("low-sodium"),
			readline.PcItem("gluten-free"), readline.PcItem("nut-free"), readline.PcItem("low-sugar"),
		),
		readline.PcItem("release", readline.PcItem("below"), readline.PcItem("cuisine")),
		readline.PcItem("stations"),
		readline.PcItem("add"),
		readline.PcItem("remove"),
		readline.PcItem("assign"),
		readline.PcItem("stock"),
		readline.PcItem("check"),
		readline.PcItem("prepare"),
		readline.PcItem("merge"),
		readline.PcItem("front"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func runShell(s *session) error {
	historyFile := ""
	if Cfg != nil {
		historyFile = Cfg.HistoryFile
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          color.CyanString("bistro> "),
		HistoryFile:     historyFile,
		AutoComplete:    shellCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}
	defer func() {
		_ = rl.Close()
	}()

	out := rl.Stdout()
	_, _ = fmt.Fprintf(out, "%d dishes, %d stations. Type help for commands.\n", s.kitchen.Len(), s.manager.Len())
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := runShellLine(s, line, out)
		if err != nil {
			_, _ = fmt.Fprintln(out, color.HiRedString("Error: %v", err))
		}
		if quit {
			return nil
		}
	}
}

// splitArgs splits a shell line on whitespace, keeping double-quoted runs
// together.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case unicode.IsSpace(r) && !inQuote:
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	if started {
		args = append(args, cur.String())
	}
	return args, nil
}

func usage(text string) error {
	return fmt.Errorf("%w: %s", errUsage, text)
}

// runShellLine executes one shell command against s. It reports whether the
// shell should exit.
func runShellLine(s *session, line string, w io.Writer) (bool, error) {
	args, err := splitArgs(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "quit", "exit", "q":
		return true, nil

	case "help", "?":
		_, _ = fmt.Fprintln(w, shellHelp)

	case "report":
		return false, s.kitchen.Report(w)

	case "menu":
		k := s.kitchen
		if len(args) > 0 {
			c, err := ParseCuisineFlag(args[0])
			if err != nil {
				return false, err
			}
			k = filterCuisine(k, c)
		}
		return false, k.DisplayMenu(w)

	case "diet":
		if len(args) == 0 {
			return false, usage("diet <request>...")
		}
		req, err := parseDietaryWords(args)
		if err != nil {
			return false, err
		}
		s.kitchen.DietaryAdjustment(req)
		_, _ = fmt.Fprintf(w, "Adjusted %d dishes\n", s.kitchen.Len())

	case "release":
		if len(args) != 2 {
			return false, usage("release below <minutes> | release cuisine <CUISINE>")
		}
		switch strings.ToLower(args[0]) {
		case "below":
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return false, fmt.Errorf("invalid minutes %q: %w", args[1], err)
			}
			_, _ = fmt.Fprintf(w, "Released %d dish(es)\n", s.kitchen.ReleaseDishesBelowPrepTime(n))
		case "cuisine":
			c, err := ParseCuisineFlag(args[1])
			if err != nil {
				return false, err
			}
			_, _ = fmt.Fprintf(w, "Released %d dish(es)\n", s.kitchen.ReleaseDishesOfCuisine(c))
		default:
			return false, usage("release below <minutes> | release cuisine <CUISINE>")
		}

	case "stations", "ls":
		stations := s.manager.Stations()
		if len(args) > 0 {
			if stations, err = findStations(s.manager, args); err != nil {
				return false, err
			}
		}
		if len(stations) == 0 {
			_, _ = fmt.Fprintln(w, "No stations.")
			return false, nil
		}
		renderStations(w, stations)

	case "add":
		if len(args) != 1 {
			return false, usage("add <station>")
		}
		st, err := s.manager.AddStation(args[0])
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "Added %s\n", st.Name())

	case "remove", "rm":
		if len(args) != 1 {
			return false, usage("remove <station>")
		}
		name := MapToAlias(args[0])
		if err := s.manager.RemoveStation(name); err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "Removed %s\n", name)

	case "assign":
		if len(args) != 2 {
			return false, usage("assign <station> <dish>")
		}
		name := MapToAlias(args[0])
		ref, ok := s.manager.Catalog().Lookup(args[1])
		if !ok {
			return false, fmt.Errorf("%s: %w", args[1], station.ErrUnknownDish)
		}
		if err := s.manager.AssignDishToStation(name, ref); err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "Assigned %s to %s\n", args[1], name)

	case "stock":
		if len(args) < 3 || len(args) > 5 {
			return false, usage("stock <station> <ingredient> <qty> [required] [price]")
		}
		ing, err := parseStockArgs(args[1:])
		if err != nil {
			return false, err
		}
		name := MapToAlias(args[0])
		if err := s.manager.ReplenishIngredientAtStation(name, ing); err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "Stocked %d %s at %s\n", ing.Quantity, ing.Name, name)

	case "check":
		if len(args) != 1 {
			return false, usage("check <dish>")
		}
		checkDish(w, s.manager, args[0])

	case "prepare", "cook":
		if len(args) < 1 || len(args) > 2 {
			return false, usage("prepare <dish> [station]")
		}
		var st *station.Station
		if len(args) == 2 {
			if st, err = s.manager.FindStation(MapToAlias(args[1])); err != nil {
				return false, err
			}
		} else if st, _, err = pickStation(s.manager, args[0], false, false); err != nil {
			return false, err
		}
		_, err = prepareAt(w, s.manager, st.Name(), args[0], 1)
		return false, err

	case "merge":
		if len(args) != 2 {
			return false, usage("merge <into> <from>")
		}
		into, from := MapToAlias(args[0]), MapToAlias(args[1])
		if err := s.manager.MergeStations(into, from); err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "Merged %s into %s\n", from, into)

	case "front":
		if len(args) != 1 {
			return false, usage("front <station>")
		}
		name := MapToAlias(args[0])
		if err := s.manager.MoveStationToFront(name); err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "%s moved to the front\n", name)

	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return false, nil
}

func parseDietaryWords(words []string) (models.DietaryRequest, error) {
	var req models.DietaryRequest
	for _, w := range words {
		switch strcase.ToKebab(w) {
		case "vegetarian":
			req.Vegetarian = true
		case "vegan":
			req.Vegan = true
		case "low-sodium":
			req.LowSodium = true
		case "gluten-free":
			req.GlutenFree = true
		case "nut-free":
			req.NutFree = true
		case "low-sugar":
			req.LowSugar = true
		default:
			return req, fmt.Errorf("unknown dietary request %q", w)
		}
	}
	return req, nil
}

// parseStockArgs reads "<ingredient> <qty> [required] [price]".
func parseStockArgs(args []string) (models.Ingredient, error) {
	ing := models.Ingredient{Name: args[0]}
	var err error
	if ing.Quantity, err = strconv.Atoi(args[1]); err != nil {
		return ing, fmt.Errorf("invalid quantity %q: %w", args[1], err)
	}
	if len(args) > 2 {
		if ing.RequiredQuantity, err = strconv.Atoi(args[2]); err != nil {
			return ing, fmt.Errorf("invalid required quantity %q: %w", args[2], err)
		}
	}
	if len(args) > 3 {
		if ing.Price, err = strconv.ParseFloat(args[3], 64); err != nil {
			return ing, fmt.Errorf("invalid price %q: %w", args[3], err)
		}
	}
	return ing, nil
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dstockto/bistro/station"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// bellSkipper drops the terminal bell promptui rings on every keystroke.
type bellSkipper struct {
	out io.WriteCloser
}

func (b *bellSkipper) Write(p []byte) (int, error) {
	const bell = 7
	if len(p) == 1 && p[0] == bell {
		return 0, nil
	}
	return b.out.Write(p)
}

func (b *bellSkipper) Close() error {
	return b.out.Close()
}

// NoBellStdout is the stdout used by prompts.
var NoBellStdout io.WriteCloser = &bellSkipper{out: os.Stdout}

// isInteractiveAllowed returns true when the user did not disable interaction
// via flag and when the process is attached to a TTY suitable for prompting.
func isInteractiveAllowed(nonInteractive bool) bool {
	if nonInteractive {
		return false
	}
	// Require stdin, stdout, and stderr to be terminals and TERM to be sane
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) || !isatty.IsTerminal(os.Stderr.Fd()) {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if term == "" || term == "dumb" {
		return false
	}
	return true
}

// stationLabel is the one-line description used in pickers.
func stationLabel(s *station.Station) string {
	return fmt.Sprintf("%s (%d dishes, %d stock entries)", s.Name(), len(s.DishRefs()), len(s.IngredientsStock()))
}

// selectStationInteractively shows a selectable list of stations and returns
// the chosen one. If the user cancels the prompt (Esc or Ctrl+C), canceled is
// true.
func selectStationInteractively(candidates []*station.Station, purpose string, forceSimple bool) (*station.Station, bool, error) {
	if len(candidates) == 0 {
		return nil, false, fmt.Errorf("no stations available to select from")
	}
	if forceSimple {
		return selectStationSimple(os.Stdin, os.Stdout, candidates, purpose)
	}

	items := make([]string, len(candidates))
	for i, s := range candidates {
		items[i] = stationLabel(s)
	}

	searcher := func(input string, index int) bool {
		needle := strings.ToLower(strings.TrimSpace(input))
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(candidates[index].Name()), needle)
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "✔ {{ . | green }}",
	}

	label := "Select a station (type to filter; Esc to cancel)"
	if strings.TrimSpace(purpose) != "" {
		label = fmt.Sprintf("Select a station for '%s' (type to filter; Esc to cancel)", purpose)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     os.Stdin,
		Stdout:    NoBellStdout,
	}

	idx, _, perr := prompt.Run()
	if perr != nil {
		if perr == promptui.ErrInterrupt || perr == promptui.ErrAbort {
			return nil, true, nil
		}
		// Fall back to simple selector on unexpected prompt errors
		return selectStationSimple(os.Stdin, os.Stdout, candidates, purpose)
	}

	return candidates[idx], false, nil
}

// selectStationSimple provides a numbered list over basic stdin without cursor
// control. User types a number or a station name, or presses Enter to cancel.
func selectStationSimple(in io.Reader, out io.Writer, candidates []*station.Station, purpose string) (*station.Station, bool, error) {
	reader := bufio.NewReader(in)
	_, _ = fmt.Fprintln(out, "Several stations can do this; please choose one:")
	if strings.TrimSpace(purpose) != "" {
		_, _ = fmt.Fprintf(out, "(for '%s')\n", purpose)
	}
	for i, s := range candidates {
		_, _ = fmt.Fprintf(out, "%2d) %s\n", i+1, stationLabel(s))
	}
	_, _ = fmt.Fprint(out, "Enter number to select, or press Enter to cancel: ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, true, nil
	}
	for idx := range candidates {
		if line == fmt.Sprintf("%d", idx+1) {
			return candidates[idx], false, nil
		}
	}
	// Allow matching by name or alias as well
	name := MapToAlias(line)
	for _, s := range candidates {
		if strings.EqualFold(s.Name(), name) {
			return s, false, nil
		}
	}
	return nil, true, fmt.Errorf("invalid selection: %q", line)
}

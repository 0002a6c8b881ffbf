/*
Copyright © 2025 David Stockton <dave@davidstockton.com>
*/
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Config represents the structure of the config.json file
// Example at project root: config.json
//
//	{
//	  "menu_file": "menu.csv",
//	  "layout_file": "stations.yaml",
//	  "station_aliases": {"G": "Grill", ...}
//	}
//
// Add fields here as config grows.
type Config struct {
	MenuFile        string            `json:"menu_file"`
	LayoutFile      string            `json:"layout_file"`
	KitchenCapacity int               `json:"kitchen_capacity"`
	StationAliases  map[string]string `json:"station_aliases"`
	LowStock        map[string]int    `json:"low_stock"`
	HistoryFile     string            `json:"history_file"`
}

// Cfg holds the loaded configuration and is available to all commands.
var Cfg *Config

// Log is the command line logger. It is silent unless --verbose is set.
var Log = zerolog.Nop()

// cfgFile is set from -c/--config flag.
var cfgFile string

// noColor toggles ANSI color output off when set via --no-color flag.
var noColor bool

var verbose bool

// menuFile and layoutFile override the config file locations.
var (
	menuFile   string
	layoutFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bistro",
	Short: "Bistro is a command line tool for running a small restaurant kitchen",
	Long: `Bistro is a command line tool for running a small restaurant kitchen.

It reads the menu from a CSV file and the kitchen stations from a YAML layout,
then reports on the menu, applies dietary requests and works the stations.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Apply color preference as early as possible, but only disable if the flag is set
		if noColor {
			color.NoColor = true
		}
		setupLogger()

		// Load config only once; subsequent subcommands in the chain need not reload
		if Cfg != nil {
			return nil
		}
		// Determine path: explicit flag takes precedence; else try merge from standard locations
		if cfgFile != "" {
			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config from %s: %w", cfgFile, err)
			}
			Cfg = cfg
			Log.Debug().Str("path", cfgFile).Msg("config loaded")

			return nil
		}

		cfg, err := LoadMergedConfig()
		if err != nil {
			return fmt.Errorf("unable to load config: %w", err)
		}
		// Config is optional; only set if any file existed
		if cfg != nil {
			Cfg = cfg
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setupLogger() {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: color.NoColor}).
		Level(level).
		With().Timestamp().Logger()
}

// LoadConfig reads and parses JSON config from the given path.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("json config parsing error: %w", err)
	}

	return &c, nil
}

func exists(path string) bool {
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return !errors.Is(err, fs.ErrNotExist)
	}

	return !info.IsDir()
}

//nolint:gochecknoinits
func init() {
	// Global config flag for all commands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (config.json)")
	// Global color toggle
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().StringVarP(&menuFile, "menu", "f", "", "path to the menu CSV (overrides menu_file)")
	rootCmd.PersistentFlags().StringVarP(&layoutFile, "layout", "l", "", "path to the station layout YAML (overrides layout_file)")
}

// LoadMergedConfig attempts to load and merge configs from standard locations when no explicit --config is provided.
// Precedence (later overrides earlier):
//  1. $HOME/.config/bistro/config.json
//  2. $XDG_CONFIG_HOME/bistro/config.json
//  3. ./config.json (current working directory)
//
// If none exist, returns (nil, nil).
func LoadMergedConfig() (*Config, error) {
	paths := discoverConfigPaths()
	if len(paths) == 0 {
		return nil, nil
	}

	merged := &Config{}

	for _, p := range paths {
		c, err := LoadConfig(p)
		if err != nil {
			return nil, fmt.Errorf("failed loading %s: %w", p, err)
		}

		mergeInto(merged, c)
		Log.Debug().Str("path", p).Msg("config merged")
	}

	return merged, nil
}

// discoverConfigPaths returns existing config paths in merge order.
func discoverConfigPaths() []string {
	var out []string
	// 1) HOME
	if home, _ := os.UserHomeDir(); home != "" {
		p := filepath.Join(home, ".config", "bistro", "config.json")
		if exists(p) {
			out = append(out, p)
		}
	}
	// 2) XDG
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		p := filepath.Join(xdg, "bistro", "config.json")
		if exists(p) {
			out = append(out, p)
		}
	}
	// 3) CWD
	if cwd, _ := os.Getwd(); cwd != "" {
		p := filepath.Join(cwd, "config.json")
		if exists(p) {
			out = append(out, p)
		}
	}

	return out
}

// mergeInto copies non-zero values and maps from src into dst.
// Maps are merged by keys; src keys override dst.
func mergeInto(dst, src *Config) {
	if src == nil || dst == nil {
		return
	}

	if src.MenuFile != "" {
		dst.MenuFile = src.MenuFile
	}

	if src.LayoutFile != "" {
		dst.LayoutFile = src.LayoutFile
	}

	if src.HistoryFile != "" {
		dst.HistoryFile = src.HistoryFile
	}

	if src.KitchenCapacity > 0 {
		dst.KitchenCapacity = src.KitchenCapacity
	}
	// maps
	if src.StationAliases != nil {
		if dst.StationAliases == nil {
			dst.StationAliases = map[string]string{}
		}

		for k, v := range src.StationAliases {
			dst.StationAliases[k] = v
		}
	}

	if src.LowStock != nil {
		if dst.LowStock == nil {
			dst.LowStock = map[string]int{}
		}

		for k, v := range src.LowStock {
			dst.LowStock[k] = v
		}
	}
}

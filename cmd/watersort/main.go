// watersort is a terminal water sort puzzle: pour colored liquid between
// tubes until every tube holds a single color.
//
// Usage:
//
//	watersort play           - Play in this terminal
//	watersort levels         - Show tubes and colors per level
//	watersort history        - Browse recorded runs
//	watersort serve          - Start SSH server for remote play
//	watersort config         - Print the effective configuration
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set run journal path (default: ~/.watersort/runs.db)
//	--config <path> - Use a specific config YAML
//	--log <path>    - Write a debug log to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/watersort/internal/config"
)

const defaultDBPath = "~/.watersort/runs.db"

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "watersort",
	Short: "Water Sort - sort colored liquid in your terminal",
	Long: `Water Sort is a terminal puzzle: colored liquid is mixed across tubes
and you pour it around until every tube holds one color.

Available commands:
  play     - Play a run of levels
  levels   - Show how tubes and colors grow per level
  history  - Browse recorded runs
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  watersort play
  watersort play --difficulty hard
  watersort play --level 12 --seed 42
  watersort serve --ssh :2222
  watersort history --player ada`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies a difficulty preset when
// one is given.
func loadConfig(difficulty string) (config.WaterSortConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if difficulty != "" {
		if err := config.ApplyPreset(&cfg, config.DifficultyPreset(difficulty)); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// openLogger returns a debug logger writing to --log, or a discarding one.
// The returned closer is never nil.
func openLogger(prefix string) (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

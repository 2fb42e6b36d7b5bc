// snake is a terminal snake game with a self-steering autoplay mode.
//
// Usage:
//
//	snake                    - Pick a map and play
//	snake play -m CLASSIC    - Play one map directly
//	snake list [kind]        - List maps, themes or speeds
//	snake bench              - Run headless autoplay games and record them
//	snake runs               - Show the run journal
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set run journal path (default: ~/.snake/runs.db)
//	--config <path>    - Use a specific config file
//	--log <path>       - Write the log to a file
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `A terminal snake game. The snake can be steered by hand or left to
an autoplay controller that chases food and tries not to trap itself.

Without a subcommand, snake shows the map picker (same as 'snake play').

Examples:
  snake
  snake play --map AROUND --speed 9
  snake play --autoplay --theme ascii
  snake bench --runs 20
  snake runs --tui`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/runs.db", "Path to the run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write the log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(runsCmd)
}

// seed returns the --seed value, or a time based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadConfig reads the config file chain. Flags are applied on top by the
// caller, which validates the result.
func loadConfig() (config.SnakeConfig, error) {
	return config.Load(flagConfig)
}

// newLogger builds the program logger. fallback receives output when --log
// is not set; the returned closer releases the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogPath != "" {
		path, err := expandHome(flagLogPath)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

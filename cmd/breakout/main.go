// breakout is a Breakout game for the terminal, a desktop window or SSH.
//
// Usage:
//
//	breakout play            - Play in the terminal
//	breakout window          - Play in a desktop window
//	breakout menu            - Start the menu (play, high scores)
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show high scores
//	breakout config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: window.fps from the config)
//	--seed <value>        - Set RNG seed
//	--db <path>           - Set database path (default: ~/.breakout/scores.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a rotating file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/games/breakout"
	"github.com/vovakirdan/breakout/internal/logging"
	"github.com/vovakirdan/breakout/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string

	// gameConfig is the loaded config with the difficulty preset applied.
	gameConfig config.BreakoutConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - Break every brick with a ball and a paddle",
	Long: `Breakout is a single-screen brick breaker. Move the paddle to keep the
ball in play and clear all 30 bricks to win.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default configuration

Examples:
  breakout play
  breakout window --difficulty hard
  breakout menu --fps 30
  breakout serve --ssh :2222
  breakout scores`,
	PersistentPreRun: loadGameConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = window.fps from the config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config and difficulty before any command runs.
func loadGameConfig(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fatal(err)
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		fatal(err)
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	gameConfig = cfg

	// Games created through the registry read these
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
}

// fatal prints err to stderr and exits.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// tickRate returns the --fps flag, or the configured rate when unset.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	return gameConfig.Window.FPS
}

// runtimeConfig builds the runtime config for a terminal frontend.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(),
		Seed:     flagSeed,
	}
}

// newLogger creates the command logger. Without --log-file, lines go to
// fallback (nil discards them).
func newLogger(prefix string, fallback io.Writer) (*logging.Logger, error) {
	return logging.New(logging.Options{
		File:     flagLogFile,
		Level:    flagLogLevel,
		Fallback: fallback,
		Prefix:   prefix,
	})
}

// openStore opens the scores database. The game still works without it.
func openStore(logger *logging.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// closeStore closes store if it was opened.
func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

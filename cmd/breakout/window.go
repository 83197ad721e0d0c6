package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/games/breakout"
	"github.com/vovakirdan/breakout/internal/platform/driver"
	"github.com/vovakirdan/breakout/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game of Breakout in a desktop window sized to the playfield.

Controls:
  Left/A     - Move paddle left (while held)
  Right/D    - Move paddle right (while held)
  P/Space    - Pause
  R          - Restart the run
  Esc/Q      - Quit

Examples:
  breakout window
  breakout window --fps 120
  breakout window --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	if err := doWindow(); err != nil {
		fatal(err)
	}
}

func doWindow() error {
	// The terminal is free, so logs go to stderr
	logger, err := newLogger("window", os.Stderr)
	if err != nil {
		return err
	}
	defer logger.Close()

	store := openStore(logger)
	defer closeStore(store)

	game := breakout.NewWithConfig(gameConfig)
	opts := driver.Options{Config: gameConfig, Logger: logger.Logger}
	if err := window.Run(game, store, tickRate(), opts); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

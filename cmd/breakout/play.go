package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/platform/tui"
	"github.com/vovakirdan/breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game of Breakout in the terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  P/Space    - Pause
  R          - Restart the run
  Esc/B      - Leave (while paused or after winning)
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a text screenshot

Difficulty options:
  easy   - Slower ball and wider paddle, speeds up as bricks fall
  normal - Starts a little faster, speeds up as bricks fall
  hard   - Faster ball and narrower paddle
  fixed  - No progression, stays at the config's initial level

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml
  breakout play --log-file ~/.breakout/breakout.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := doPlay(); err != nil {
		fatal(err)
	}
}

func doPlay() error {
	logger, err := newLogger("play", nil)
	if err != nil {
		return err
	}
	defer logger.Close()

	// Create game instance
	game, err := registry.Create(registry.DefaultGameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	defer closeStore(store)

	opts := tui.Options{Config: gameConfig, Logger: logger.Logger}
	if err := tui.Run(game, store, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

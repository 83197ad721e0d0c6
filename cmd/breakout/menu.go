package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start Breakout in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Play asks for a difficulty; after a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := doMenu(); err != nil {
		fatal(err)
	}
}

func doMenu() error {
	logger, err := newLogger("menu", nil)
	if err != nil {
		return err
	}
	defer logger.Close()

	store := openStore(logger)
	defer closeStore(store)

	opts := tui.Options{Config: gameConfig, Logger: logger.Logger}
	return tui.RunSession(store, runtimeConfig(), opts)
}

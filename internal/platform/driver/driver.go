// Package driver runs a game one fixed tick at a time on behalf of a
// frontend. It owns the input frame, logs game events, records finished runs
// and decides when the frontend should close.
package driver

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/registry"
	"github.com/vovakirdan/breakout/internal/storage"
)

// Options configures a driver.
type Options struct {
	// Config is the base game configuration. Gameplay settings (exit on win,
	// hold ticks) are read from it.
	Config config.BreakoutConfig

	// Player is recorded with each run (the SSH user name, or empty).
	Player string

	// Logger receives game events. Nil discards them.
	Logger *log.Logger
}

// Driver steps a game and handles everything around a tick.
type Driver struct {
	game      registry.Game
	store     *storage.Store
	logger    *log.Logger
	opts      Options
	frame     core.InputFrame
	hold      *core.HoldTracker
	state     core.GameState
	runsSaved int
}

// New creates a driver for the game. store may be nil.
func New(game registry.Game, store *storage.Store, opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Driver{
		game:   game,
		store:  store,
		logger: logger,
		opts:   opts,
		frame:  core.NewInputFrame(),
		hold:   core.NewHoldTracker(opts.Config.Gameplay.HoldTicks),
	}
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game {
	return d.game
}

// Logger returns the driver's logger.
func (d *Driver) Logger() *log.Logger {
	return d.logger
}

// Set marks an action for the next tick only.
func (d *Driver) Set(a core.Action) {
	d.frame.Set(a)
}

// Press records a key press from a frontend that cannot see key releases.
// Paddle directions stay held for the configured number of ticks; pause and
// restart drop any held direction.
func (d *Driver) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft, core.ActionRight:
		d.hold.Press(a)
		return
	case core.ActionPause, core.ActionRestart:
		d.hold.Release()
	}
	d.frame.Set(a)
}

// Tick advances the game by one step. done reports that the win message has
// been shown long enough and the frontend should close.
func (d *Driver) Tick() (result core.StepResult, done bool) {
	// Held directions last a few ticks past the key event
	d.hold.Apply(&d.frame)

	result = d.game.Step(d.frame)
	d.state = result.State
	d.frame.Clear()

	d.logEvents(result.Events)

	// Record the run once it ends (ball lost or won)
	if ev, ok := result.RunEnded(); ok {
		d.saveRun(ev)
	}

	return result, d.state.GameOver && d.opts.Config.Gameplay.ExitOnWin
}

// State returns the state after the last tick.
func (d *Driver) State() core.GameState {
	return d.state
}

// RunsSaved returns how many runs have been recorded.
func (d *Driver) RunsSaved() int {
	return d.runsSaved
}

// logEvents writes game events to the logger.
func (d *Driver) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Type {
		case core.EventBrickDestroyed:
			d.logger.Debug("brick destroyed", "score", ev.Score, "progress", ev.Progress, "tick", ev.Tick)
		case core.EventBallLost:
			d.logger.Info("ball lost", "score", ev.Score, "progress", ev.Progress, "tick", ev.Tick)
		case core.EventWin:
			d.logger.Info("you win", "score", ev.Score, "tick", ev.Tick)
		}
	}
}

// saveRun records a finished run. Storage is best effort.
func (d *Driver) saveRun(ev core.Event) {
	if d.store == nil || ev.Score <= 0 {
		return
	}
	won := ev.Type == core.EventWin
	id, err := d.store.SaveRun(storage.Run{
		GameID:        d.game.ID(),
		Player:        d.opts.Player,
		Score:         ev.Score,
		Progress:      ev.Progress,
		Won:           won,
		DurationTicks: ev.Tick,
	})
	if err != nil {
		d.logger.Warn("could not save run", "error", err)
		return
	}
	d.runsSaved++
	d.logger.Debug("run saved", "run", id, "score", ev.Score, "won", won)
}

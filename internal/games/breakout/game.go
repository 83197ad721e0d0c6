package breakout

import (
	"math"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/registry"
)

// GameState constants
const (
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateWin      = "win"      // Every brick destroyed, "You Win!" on screen
	StateFinished = "finished" // Win message shown for the full hold time
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the Breakout game logic.
type Game struct {
	// Game objects
	paddle Paddle
	ball   Ball
	bricks *Grid

	// Game state
	state     string
	score     int
	tickCount int // Ticks played in the current run
	winTicks  int // Ticks left before the win message is done

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	custom     *config.BreakoutConfig // Explicit config, bypasses file loading
	difficulty *config.DifficultyManager

	// Playfield size in world units
	fieldW float64
	fieldH float64

	// Terminal rendering guard
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{custom: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Config returns the configuration in use since the last Reset.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Reset loads the configuration and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.MaxScore())

	g.fieldW = float64(g.cfg.Window.Width)
	g.fieldH = float64(g.cfg.Window.Height)

	// Check screen size
	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.resetRun()
}

// Resize updates the terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// loadConfig resolves the configuration for this game.
func (g *Game) loadConfig() config.BreakoutConfig {
	if g.custom != nil {
		return *g.custom
	}

	// Load game config
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}

	// Apply difficulty preset if set
	config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	if cfg.Validate() != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	return cfg
}

// resetRun puts ball, paddle, bricks and score back to their starting state.
func (g *Game) resetRun() {
	cfg := g.cfg

	g.ball = Ball{
		X:      g.fieldW / 2,
		Y:      g.fieldH / 2,
		VX:     cfg.Ball.Speed,
		VY:     -cfg.Ball.Speed,
		Radius: cfg.Ball.Radius,
	}

	g.paddle = Paddle{
		X: float64(cfg.Window.Width/2 - cfg.Paddle.Width/2),
		Y: float64(cfg.Window.Height - cfg.Paddle.BottomOffset),
		W: float64(cfg.Paddle.Width),
		H: float64(cfg.Paddle.Height),
	}

	g.bricks = NewGrid(cfg.Bricks)
	g.score = 0
	g.tickCount = 0
	g.winTicks = 0
	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) {
		g.resetRun()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	switch g.state {
	case StatePaused, StateFinished:
		return core.StepResult{State: g.State()}
	case StateWin:
		g.winTicks--
		if g.winTicks <= 0 {
			g.state = StateFinished
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.Dt()
	var events []core.Event

	// Handle paddle movement
	g.updatePaddle(in, dt)

	// Move ball
	g.ball.SetSpeed(g.difficulty.Speed(g.cfg.Ball.Speed, g.score, g.tickCount))
	g.ball.Move(dt)

	// Walls
	horiz, vert := CheckWallCollision(&g.ball, g.fieldW)
	ApplyWallBounce(&g.ball, horiz, vert)

	// Paddle
	CheckPaddleCollision(&g.ball, &g.paddle)

	// Bricks
	events = g.hitBricks(events)

	// Ball fell below the playfield: start over
	if FellOut(&g.ball, g.fieldH) {
		events = append(events, g.event(core.EventBallLost))
		g.resetRun()
		return core.StepResult{State: g.State(), Events: events}
	}

	// All bricks gone
	if g.bricks.CountAlive() == 0 {
		events = append(events, g.event(core.EventWin))
		g.handleWin()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// updatePaddle handles paddle movement.
func (g *Game) updatePaddle(in core.InputFrame, dt float64) {
	step := g.cfg.Paddle.Speed * dt

	// A/Left = move left, D/Right = move right
	if in.Has(core.ActionLeft) {
		g.paddle.MoveWithin(-step, g.fieldW)
	}
	if in.Has(core.ActionRight) {
		g.paddle.MoveWithin(step, g.fieldW)
	}
}

// hitBricks removes the bricks under the ball. The ball's vertical velocity
// flips once per tick no matter how many bricks were hit.
func (g *Game) hitBricks(events []core.Event) []core.Event {
	removed, points := g.bricks.Hit(g.ball.Bounds())
	if removed == 0 {
		return events
	}

	g.ball.BounceY()
	per := points / removed
	for range removed {
		g.score += per
		events = append(events, g.event(core.EventBrickDestroyed))
	}
	// Keep any remainder from uneven brick values
	g.score += points - per*removed
	return events
}

// handleWin starts the win message countdown.
func (g *Game) handleWin() {
	ticks := int(math.Round(g.cfg.Gameplay.WinHoldSeconds * float64(g.tickRate())))
	g.winTicks = ticks
	if ticks <= 0 {
		g.state = StateFinished
		return
	}
	g.state = StateWin
}

// tickRate returns the effective simulation rate.
func (g *Game) tickRate() int {
	if g.runtime.TickRate > 0 {
		return g.runtime.TickRate
	}
	return 60
}

// event builds an event describing the current run.
func (g *Game) event(t core.EventType) core.Event {
	return core.Event{
		Type:     t,
		Score:    g.score,
		Progress: g.Progress(),
		Tick:     g.tickCount,
	}
}

// Progress returns the percentage of the maximum score reached, truncated.
func (g *Game) Progress() int {
	maxScore := g.cfg.MaxScore()
	if maxScore <= 0 {
		return 0
	}
	return g.score * 100 / maxScore
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Progress: g.Progress(),
		GameOver: g.state == StateFinished,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the internal state name (playing, paused, win, finished).
func (g *Game) Phase() string {
	return g.state
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

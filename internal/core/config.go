package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal frontends)
	ScreenH  int   // Screen height in characters (terminal frontends)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Dt returns the fixed simulation timestep in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Progress int  // Percentage of the maximum score reached (0-100)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventBrickDestroyed EventType = iota + 1 // A brick was removed
	EventBallLost                            // Ball left the playfield; the run was reset
	EventWin                                 // Every brick is gone
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventBallLost:
		return "ball_lost"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event is emitted by Game.Step. Score and Progress describe the run at the
// moment of the event (before any reset it triggered).
type Event struct {
	Type     EventType
	Score    int
	Progress int
	Tick     int // Ticks played in the run so far
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// RunEnded returns the event that ended a run this tick, if any.
func (r StepResult) RunEnded() (Event, bool) {
	for _, e := range r.Events {
		if e.Type == EventBallLost || e.Type == EventWin {
			return e, true
		}
	}
	return Event{}, false
}

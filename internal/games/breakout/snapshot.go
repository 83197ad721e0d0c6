package breakout

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	State    string
	Score    int
	WinTicks int

	PaddleX float64
	PaddleY float64

	BallX  float64
	BallY  float64
	BallVX float64
	BallVY float64

	// Brick states, row-major: 1 = alive, 0 = destroyed
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, len(g.bricks.Bricks))
	for i, b := range g.bricks.Bricks {
		if b.Alive {
			brickData[i] = 1
		}
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:     g.state,
		Score:     g.score,
		WinTicks:  g.winTicks,
		PaddleX:   g.paddle.X,
		PaddleY:   g.paddle.Y,
		BallX:     g.ball.X,
		BallY:     g.ball.Y,
		BallVX:    g.ball.VX,
		BallVY:    g.ball.VY,
		BrickData: brickData,
	}
}

// ApplySnapshot restores game state from a snapshot.
// The game must have been Reset with the same configuration.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.state = snap.State
	g.score = snap.Score
	g.winTicks = snap.WinTicks

	g.paddle.X = snap.PaddleX
	g.paddle.Y = snap.PaddleY

	g.ball.X = snap.BallX
	g.ball.Y = snap.BallY
	g.ball.VX = snap.BallVX
	g.ball.VY = snap.BallVY

	// Restore brick states
	if len(snap.BrickData) == len(g.bricks.Bricks) {
		for i := range g.bricks.Bricks {
			g.bricks.Bricks[i].Alive = snap.BrickData[i] == 1
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.WinTicks) //#nosec G115 -- hash computation

	for _, f := range []float64{snap.PaddleX, snap.PaddleY, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY} {
		h = h*31 + math.Float64bits(f)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

// Package breakout implements a single-screen Breakout game: one paddle, one
// ball and a fixed grid of bricks, simulated in world units with a fixed
// timestep.
package breakout

import (
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
)

// Brick represents a single brick in the grid.
type Brick struct {
	Rect   core.RectF
	Points int  // Points awarded when destroyed
	Alive  bool // Whether brick is still present
}

// Grid is the brick wall, stored row-major.
type Grid struct {
	Rows    int
	Columns int
	Bricks  []Brick
}

// NewGrid lays out a full brick wall from the config.
// Brick (row i, column j) sits at (j*(w+gap)+offsetX, i*(h+gap)+offsetY).
func NewGrid(cfg config.BreakoutBricks) *Grid {
	g := &Grid{
		Rows:    cfg.Rows,
		Columns: cfg.Columns,
		Bricks:  make([]Brick, 0, cfg.Rows*cfg.Columns),
	}

	for i := range cfg.Rows {
		for j := range cfg.Columns {
			x := float64(j*(cfg.Width+cfg.Gap) + cfg.OffsetX)
			y := float64(i*(cfg.Height+cfg.Gap) + cfg.OffsetY)
			g.Bricks = append(g.Bricks, Brick{
				Rect:   core.NewRectF(x, y, float64(cfg.Width), float64(cfg.Height)),
				Points: cfg.Points,
				Alive:  true,
			})
		}
	}

	return g
}

// At returns the brick at the given row and column.
func (g *Grid) At(row, col int) *Brick {
	return &g.Bricks[row*g.Columns+col]
}

// CountAlive returns the number of bricks still in play.
func (g *Grid) CountAlive() int {
	count := 0
	for _, b := range g.Bricks {
		if b.Alive {
			count++
		}
	}
	return count
}

// Hit removes every alive brick that overlaps r and returns the number of
// bricks removed and the points they were worth.
func (g *Grid) Hit(r core.RectF) (removed, points int) {
	for i := range g.Bricks {
		b := &g.Bricks[i]
		if !b.Alive || !b.Rect.Intersects(r) {
			continue
		}
		b.Alive = false
		removed++
		points += b.Points
	}
	return removed, points
}

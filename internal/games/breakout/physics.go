package breakout

import (
	"math"

	"github.com/vovakirdan/breakout/internal/core"
)

// Ball represents the ball. Position is the top-left corner of its bounding
// square, so collisions are plain AABB checks against Bounds().
type Ball struct {
	X, Y   float64 // Top-left of the bounding square
	VX, VY float64 // Velocity in world units per second
	Radius float64
}

// Diameter returns the side of the ball's bounding square.
func (b *Ball) Diameter() float64 {
	return 2 * b.Radius
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Diameter(), b.Diameter())
}

// Center returns the center of the ball.
func (b *Ball) Center() (float64, float64) {
	return b.X + b.Radius, b.Y + b.Radius
}

// Move advances the ball by its velocity over dt seconds.
func (b *Ball) Move(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// SetSpeed keeps the direction on each axis and sets its magnitude.
func (b *Ball) SetSpeed(speed float64) {
	b.VX = math.Copysign(speed, b.VX)
	b.VY = math.Copysign(speed, b.VY)
}

// Paddle represents the player's paddle.
type Paddle struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Right returns the right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.W
}

// MoveWithin moves the paddle by dx while keeping it inside [0, fieldW].
// Movement only starts when the paddle is not already touching the edge it
// moves toward.
func (p *Paddle) MoveWithin(dx, fieldW float64) {
	switch {
	case dx < 0 && p.X > 0:
		p.X += dx
	case dx > 0 && p.Right() < fieldW:
		p.X += dx
	}
	p.X = core.ClampF(p.X, 0, fieldW-p.W)
}

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// CheckWallCollision checks the ball against the left, right and top walls.
// It returns the horizontal and vertical wall touched, if any. The bottom is
// open: falling out is detected by FellOut.
func CheckWallCollision(ball *Ball, fieldW float64) (horiz, vert CollisionSide) {
	horiz, vert = CollisionNone, CollisionNone

	if ball.X <= 0 {
		horiz = CollisionLeft
	} else if ball.X+ball.Diameter() >= fieldW {
		horiz = CollisionRight
	}

	if ball.Y <= 0 {
		vert = CollisionTop
	}

	return horiz, vert
}

// ApplyWallBounce points the ball's velocity back into the playfield for each
// wall it touches. A ball already moving away from a wall is left alone, so it
// cannot get stuck oscillating on the boundary.
func ApplyWallBounce(ball *Ball, horiz, vert CollisionSide) {
	switch horiz {
	case CollisionLeft:
		ball.VX = math.Abs(ball.VX)
	case CollisionRight:
		ball.VX = -math.Abs(ball.VX)
	}
	if vert == CollisionTop {
		ball.VY = math.Abs(ball.VY)
	}
}

// CheckPaddleCollision reports whether the ball overlaps the paddle and, if
// so, sends it upward.
func CheckPaddleCollision(ball *Ball, paddle *Paddle) bool {
	if !ball.Bounds().Intersects(paddle.Bounds()) {
		return false
	}
	ball.VY = -math.Abs(ball.VY)
	return true
}

// FellOut reports whether the ball's top edge has passed below the playfield.
func FellOut(ball *Ball, fieldH float64) bool {
	return ball.Y > fieldH
}

package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBallMove(t *testing.T) {
	b := Ball{X: 100, Y: 100, VX: 60, VY: -120, Radius: 10}
	b.Move(0.5)

	assert.Equal(t, 130.0, b.X)
	assert.Equal(t, 40.0, b.Y)

	cx, cy := b.Center()
	assert.Equal(t, 140.0, cx)
	assert.Equal(t, 50.0, cy)
	assert.Equal(t, 20.0, b.Bounds().W)
}

func TestBallSetSpeedKeepsDirection(t *testing.T) {
	b := Ball{VX: -250, VY: 250}
	b.SetSpeed(300)

	assert.Equal(t, -300.0, b.VX)
	assert.Equal(t, 300.0, b.VY)
}

func TestPaddleMoveWithin(t *testing.T) {
	p := Paddle{X: 5, Y: 550, W: 100, H: 20}

	p.MoveWithin(-10, 800)
	assert.Equal(t, 0.0, p.X, "clamped at the left edge")

	// Already at the edge: no movement left
	p.MoveWithin(-10, 800)
	assert.Equal(t, 0.0, p.X)

	p.X = 695
	p.MoveWithin(10, 800)
	assert.Equal(t, 700.0, p.X, "clamped at the right edge")
	assert.Equal(t, 800.0, p.Right())

	p.MoveWithin(10, 800)
	assert.Equal(t, 700.0, p.X)
}

func TestCheckWallCollision(t *testing.T) {
	tests := []struct {
		name      string
		ball      Ball
		wantHoriz CollisionSide
		wantVert  CollisionSide
	}{
		{"middle", Ball{X: 400, Y: 300, Radius: 10}, CollisionNone, CollisionNone},
		{"left", Ball{X: 0, Y: 300, Radius: 10}, CollisionLeft, CollisionNone},
		{"right", Ball{X: 780, Y: 300, Radius: 10}, CollisionRight, CollisionNone},
		{"top", Ball{X: 400, Y: -1, Radius: 10}, CollisionNone, CollisionTop},
		{"corner", Ball{X: -2, Y: -2, Radius: 10}, CollisionLeft, CollisionTop},
		{"bottom is open", Ball{X: 400, Y: 700, Radius: 10}, CollisionNone, CollisionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, v := CheckWallCollision(&tc.ball, 800)
			assert.Equal(t, tc.wantHoriz, h)
			assert.Equal(t, tc.wantVert, v)
		})
	}
}

func TestApplyWallBounceIsDirectional(t *testing.T) {
	// Already moving away from the left wall: unchanged
	b := Ball{VX: 250, VY: -250}
	ApplyWallBounce(&b, CollisionLeft, CollisionNone)
	assert.Equal(t, 250.0, b.VX)

	b = Ball{VX: -250, VY: -250}
	ApplyWallBounce(&b, CollisionLeft, CollisionTop)
	assert.Equal(t, 250.0, b.VX)
	assert.Equal(t, 250.0, b.VY)

	b = Ball{VX: 250, VY: 250}
	ApplyWallBounce(&b, CollisionRight, CollisionNone)
	assert.Equal(t, -250.0, b.VX)
	assert.Equal(t, 250.0, b.VY)
}

func TestCheckPaddleCollision(t *testing.T) {
	p := Paddle{X: 350, Y: 550, W: 100, H: 20}

	miss := Ball{X: 100, Y: 540, VY: 250, Radius: 10}
	assert.False(t, CheckPaddleCollision(&miss, &p))
	assert.Equal(t, 250.0, miss.VY)

	hit := Ball{X: 390, Y: 535, VY: 250, Radius: 10}
	assert.True(t, CheckPaddleCollision(&hit, &p))
	assert.Equal(t, -250.0, hit.VY)

	// Moving up through the paddle keeps going up
	up := Ball{X: 390, Y: 535, VY: -250, Radius: 10}
	assert.True(t, CheckPaddleCollision(&up, &p))
	assert.Equal(t, -250.0, up.VY)

	// Touching edges do not count
	touch := Ball{X: 390, Y: 530, VY: 250, Radius: 10}
	assert.False(t, CheckPaddleCollision(&touch, &p))
}

func TestFellOut(t *testing.T) {
	assert.False(t, FellOut(&Ball{Y: 600}, 600))
	assert.True(t, FellOut(&Ball{Y: 600.5}, 600))
}

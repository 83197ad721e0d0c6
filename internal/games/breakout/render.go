package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/breakout/internal/core"
)

// Rendering glyphs
const (
	BrickGlyph  = '█'
	PaddleGlyph = '='
	BallGlyph   = '●'
)

// Messages shown on screen
const (
	winText   = "You Win!"
	pauseText = "PAUSED"
)

// Render draws the current game state to the screen buffer.
// The world is scaled to the buffer so the whole field is always visible.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	// The win screen shows only the message
	if g.state == StateWin || g.state == StateFinished {
		dst.SetColor(core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2, winText)
		return
	}

	sx := float64(dst.Width()) / g.fieldW
	sy := float64(dst.Height()) / g.fieldH

	g.renderPaddle(dst, sx, sy)
	g.renderBall(dst, sx, sy)
	g.renderBricks(dst, sx, sy)
	g.renderHUD(dst)

	if g.state == StatePaused {
		g.renderPause(dst)
	}
}

// renderBricks draws all alive bricks.
func (g *Game) renderBricks(dst *core.Screen, sx, sy float64) {
	dst.SetColor(core.ColorGreen)
	for _, b := range g.bricks.Bricks {
		if !b.Alive {
			continue
		}
		dst.DrawRect(b.Rect.Scale(sx, sy), BrickGlyph)
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, sx, sy float64) {
	dst.SetColor(core.ColorBlue)
	dst.DrawRect(g.paddle.Bounds().Scale(sx, sy), PaddleGlyph)
}

// renderBall draws the ball at the cell under its center.
func (g *Game) renderBall(dst *core.Screen, sx, sy float64) {
	cx, cy := g.ball.Center()
	x := int(math.Floor(cx * sx))
	y := int(math.Floor(cy * sy))
	dst.SetColor(core.ColorWhite)
	dst.Set(x, y, BallGlyph)
}

// renderHUD draws the progress line in the bottom-left corner.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.SetColor(core.ColorWhite)
	dst.DrawText(1, dst.Height()-1, g.progressText())
}

// renderPause draws a boxed pause message over the field.
func (g *Game) renderPause(dst *core.Screen) {
	w := len(pauseText) + 4
	box := core.Rect{X: (dst.Width() - w) / 2, Y: dst.Height()/2 - 1, W: w, H: 3}

	dst.SetColor(core.ColorDefault)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, pauseText)
}

// progressText formats the HUD line.
func (g *Game) progressText() string {
	return fmt.Sprintf("Progress: %d%%", g.Progress())
}

package breakout

import "github.com/vovakirdan/breakout/internal/core"

// SceneRect is a filled rectangle in world units.
type SceneRect struct {
	X, Y, W, H float64
	Color      core.Color
}

// SceneCircle is a filled circle in world units, positioned by its center.
type SceneCircle struct {
	X, Y, R float64
	Color   core.Color
}

// SceneText is a line of text. Size is the nominal glyph height in world units.
type SceneText struct {
	X, Y  float64
	Size  float64
	Text  string
	Color core.Color
}

// Scene is a draw list for frontends that render in pixels instead of cells.
type Scene struct {
	Width, Height float64
	Rects         []SceneRect
	Circles       []SceneCircle
	Texts         []SceneText
}

// HUD placement in world units
const (
	hudX        = 10
	hudBottom   = 35 // Distance from the bottom edge
	hudSize     = 20
	winTextSize = 40
)

// Scene returns what the current frame looks like in world units.
func (g *Game) Scene() Scene {
	s := Scene{Width: g.fieldW, Height: g.fieldH}

	if g.state == StateWin || g.state == StateFinished {
		s.Texts = append(s.Texts, SceneText{
			X:     g.fieldW/2 - 100,
			Y:     g.fieldH/2 - 30,
			Size:  winTextSize,
			Text:  winText,
			Color: core.ColorYellow,
		})
		return s
	}

	s.Rects = append(s.Rects, SceneRect{
		X: g.paddle.X, Y: g.paddle.Y, W: g.paddle.W, H: g.paddle.H,
		Color: core.ColorBlue,
	})

	cx, cy := g.ball.Center()
	s.Circles = append(s.Circles, SceneCircle{X: cx, Y: cy, R: g.ball.Radius, Color: core.ColorWhite})

	for _, b := range g.bricks.Bricks {
		if !b.Alive {
			continue
		}
		s.Rects = append(s.Rects, SceneRect{
			X: b.Rect.X, Y: b.Rect.Y, W: b.Rect.W, H: b.Rect.H,
			Color: core.ColorGreen,
		})
	}

	s.Texts = append(s.Texts, SceneText{
		X:     hudX,
		Y:     g.fieldH - hudBottom,
		Size:  hudSize,
		Text:  g.progressText(),
		Color: core.ColorWhite,
	})

	if g.state == StatePaused {
		s.Texts = append(s.Texts, SceneText{
			X:     g.fieldW/2 - 60,
			Y:     g.fieldH/2 - 20,
			Size:  winTextSize,
			Text:  pauseText,
			Color: core.ColorWhite,
		})
	}

	return s
}

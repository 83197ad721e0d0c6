// Package window runs Breakout in a desktop window with Ebitengine. Unlike the
// terminal, the window sees real key releases, so the paddle moves exactly
// while a key is down.
package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/games/breakout"
	"github.com/vovakirdan/breakout/internal/platform/driver"
	"github.com/vovakirdan/breakout/internal/storage"
)

// Debug font cell size in pixels
const (
	glyphW = 6
	glyphH = 16
)

// Held keys move the paddle on every tick they are down.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// Edge keys fire once per press.
var edgeKeys = map[core.Action][]ebiten.Key{
	core.ActionPause:   {ebiten.KeyP, ebiten.KeySpace},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// Run opens the window and blocks until it is closed, the player quits, or
// the win message has been shown long enough.
func Run(game *breakout.Game, store *storage.Store, tickRate int, opts driver.Options) error {
	if tickRate <= 0 {
		tickRate = opts.Config.Window.FPS
	}

	game.Reset(core.RuntimeConfig{
		ScreenW:  opts.Config.Window.Width,
		ScreenH:  opts.Config.Window.Height,
		TickRate: tickRate,
	})

	w := &windowGame{
		game:   game,
		driver: driver.New(game, store, opts),
		labels: make(map[string]*ebiten.Image),
	}
	w.driver.Logger().Debug("window opened", "width", opts.Config.Window.Width, "height", opts.Config.Window.Height, "tps", tickRate)

	ebiten.SetWindowTitle(opts.Config.Window.Title)
	ebiten.SetWindowSize(opts.Config.Window.Width, opts.Config.Window.Height)
	ebiten.SetTPS(tickRate)
	return ebiten.RunGame(w)
}

type windowGame struct {
	game   *breakout.Game
	driver *driver.Driver
	labels map[string]*ebiten.Image // Rendered debug-font text by content
}

func (w *windowGame) Update() error {
	if pressedAny(edgeKeys[core.ActionQuit], inpututil.IsKeyJustPressed) {
		return ebiten.Termination
	}

	for action, keys := range heldKeys {
		if pressedAny(keys, ebiten.IsKeyPressed) {
			w.driver.Set(action)
		}
	}
	for _, action := range []core.Action{core.ActionPause, core.ActionRestart} {
		if pressedAny(edgeKeys[action], inpututil.IsKeyJustPressed) {
			w.driver.Set(action)
		}
	}

	if _, done := w.driver.Tick(); done {
		return ebiten.Termination
	}
	return nil
}

func (w *windowGame) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	scene := w.game.Scene()
	for _, r := range scene.Rects {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(r.Color), false)
	}
	for _, c := range scene.Circles {
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.R), rgba(c.Color), true)
	}
	for _, t := range scene.Texts {
		w.drawText(screen, t)
	}
}

func (w *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	scene := w.game.Scene()
	return int(math.Round(scene.Width)), int(math.Round(scene.Height))
}

// drawText draws text with the debug font, scaled so a glyph is t.Size tall.
func (w *windowGame) drawText(screen *ebiten.Image, t breakout.SceneText) {
	label, ok := w.labels[t.Text]
	if !ok {
		label = ebiten.NewImage(max(len(t.Text)*glyphW, 1), glyphH)
		ebitenutil.DebugPrintAt(label, t.Text, 0, 0)
		w.labels[t.Text] = label
	}

	scale := textScale(t.Size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColor(rgba(t.Color))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(label, op)
}

// textScale returns the debug font scale for a glyph height in pixels.
func textScale(size float64) float64 {
	if size <= 0 {
		return 1
	}
	return size / glyphH
}

// pressedAny reports whether check is true for any of the keys.
func pressedAny(keys []ebiten.Key, check func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if check(k) {
			return true
		}
	}
	return false
}

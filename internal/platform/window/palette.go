package window

import (
	"image/color"

	"github.com/vovakirdan/breakout/internal/core"
)

var background = color.RGBA{A: 0xff}

// palette maps cell colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {0xff, 0xff, 0xff, 0xff},
	core.ColorGreen:   {0x00, 0xff, 0x00, 0xff},
	core.ColorBlue:    {0x00, 0x00, 0xff, 0xff},
	core.ColorWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorYellow:  {0xff, 0xff, 0x00, 0xff},
}

// rgba returns the window color for c. Unknown colors draw white.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorWhite]
}

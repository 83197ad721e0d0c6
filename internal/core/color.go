package core

// Color is the foreground color of a screen cell. Frontends map it to their
// own palette (ANSI codes in the terminal, RGBA in the window).
type Color uint8

// Cell colors. The zero value leaves the terminal's own foreground.
const (
	ColorDefault Color = iota
	ColorGreen         // bricks
	ColorBlue          // paddle
	ColorWhite         // ball, HUD
	ColorYellow        // win message
)

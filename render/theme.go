package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tom-on-the-internet/shell-snake/terminal"
)

// Board glyphs
const (
	wallRune  = '█'
	snakeRune = '█'
	foodRune  = '●'
	blockRune = '▒'
)

// Palette
var (
	colorWall  = terminal.RGB{R: 0x44, G: 0x44, B: 0x44}
	colorFood  = terminal.RGB{R: 0xd7, G: 0x00, B: 0x00}
	colorBlock = terminal.RGB{R: 0xd7, G: 0x87, B: 0x00}
	colorScore = terminal.RGB{R: 0xee, G: 0xee, B: 0xee}
	colorAlert = terminal.RGB{R: 0xff, G: 0x00, B: 0x00}

	snakeBase = colorful.Color{R: 0.196, G: 0.804, B: 0.196} // Lime green
	snakeRipe = colorful.Color{R: 1.000, G: 0.843, B: 0.000} // Gold
)

// snakeColorRampLength is the score at which the head color saturates
const snakeColorRampLength = 30

// snakeColor blends the head color from green toward gold as the score
// climbs. Already-drawn body cells keep the color they were drawn with,
// so a long snake carries its history as a gradient
func snakeColor(score int) terminal.RGB {
	t := float64(score) / snakeColorRampLength
	if t > 1 {
		t = 1
	}
	c := snakeBase.BlendLuv(snakeRipe, t).Clamped()
	return terminal.RGB{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
	}
}

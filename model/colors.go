package model

import (
	"image/color"

	"github.com/sheikhrachel/canvas-gol/rules"
)

var (
	DeadColor   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff} // #fff
	AliveColor  = color.RGBA{R: 0xac, G: 0xff, B: 0xaa, A: 0xff} // #acffaa
	BorderColor = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff} // #ddd
)

// CellColor returns the fill colour for a cell state
func CellColor(state uint8) color.RGBA {
	if state == rules.Alive {
		return AliveColor
	}
	return DeadColor
}

// IsAliveColor reports whether c is the colour of a live cell
func IsAliveColor(c color.Color) bool {
	r, g, b, a := c.RGBA()
	ar, ag, ab, aa := AliveColor.RGBA()
	return r == ar && g == ag && b == ab && a == aa
}

package canvas

import "image"

const (
	controlsHeight = 40
	buttonWidth    = 80
	buttonHeight   = 24
	buttonGap      = 10
	minScreenWidth = 2*buttonWidth + 3*buttonGap + 150
)

// control is a clickable area under the board
type control int

const (
	noControl control = iota
	startControl
	resetControl
)

// layout maps the board and the control bar onto screen pixels
type layout struct {
	boardW, boardH int
}

func newLayout(cols, rows, cellSize int) layout {
	return layout{boardW: cols * cellSize, boardH: rows * cellSize}
}

func (l layout) screenSize() (int, int) {
	return max(l.boardW, minScreenWidth), l.boardH + controlsHeight
}

func (l layout) board() image.Rectangle {
	return image.Rect(0, 0, l.boardW, l.boardH)
}

func (l layout) button(c control) image.Rectangle {
	y := l.boardH + (controlsHeight-buttonHeight)/2
	x := buttonGap
	if c == resetControl {
		x += buttonWidth + buttonGap
	}
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}

func (l layout) statusOrigin() image.Point {
	return image.Pt(2*buttonWidth+3*buttonGap, l.boardH+controlsHeight/2+4)
}

// hit returns what lies under a screen position
func (l layout) hit(x, y int) (onBoard bool, c control) {
	p := image.Pt(x, y)
	switch {
	case p.In(l.board()):
		return true, noControl
	case p.In(l.button(startControl)):
		return false, startControl
	case p.In(l.button(resetControl)):
		return false, resetControl
	}
	return false, noControl
}

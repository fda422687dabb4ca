package model

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ClearCommand is the shell command used to wipe the terminal between frames
	ClearCommand = "clear"
)

// Renderer draws cells on a surface addressed in pixels. The driver only
// writes to it and never reads back.
type Renderer interface {
	// DrawCell paints the cell whose top-left corner is (pixelX, pixelY)
	DrawCell(pixelX, pixelY int, c color.Color)
	// DrawGridLines strokes the cell borders of the whole surface
	DrawGridLines()
	// Clear wipes everything drawn so far
	Clear()
	// Present signals that a batch of draws is complete
	Present()
}

// TerminalRenderer renders the board as text. It keeps its own copy of what
// has been drawn, mapped back from pixels to cells.
type TerminalRenderer struct {
	out      io.Writer
	cellSize int
	cells    [][]bool

	// ClearCmd, when set, is run before every frame
	ClearCmd string
	// Status, when set, is printed under every frame
	Status func() string
}

// NewTerminalRenderer creates a renderer for a cols x rows board drawn with
// cellSize pixel cells. A nil writer means os.Stdout.
func NewTerminalRenderer(out io.Writer, cols, rows, cellSize int) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &TerminalRenderer{out: out, cellSize: cellSize, cells: cells}
}

// DrawCell records the state of the cell at the given pixel position
func (r *TerminalRenderer) DrawCell(pixelX, pixelY int, c color.Color) {
	x, y := pixelX/r.cellSize, pixelY/r.cellSize
	if y < 0 || y >= len(r.cells) || x < 0 || x >= len(r.cells[y]) {
		return
	}
	r.cells[y][x] = IsAliveColor(c)
}

// DrawGridLines is a no-op, the border is printed with every frame
func (r *TerminalRenderer) DrawGridLines() {}

// Clear forgets every drawn cell
func (r *TerminalRenderer) Clear() {
	for y := range r.cells {
		clear(r.cells[y])
	}
}

// Present prints the current frame
func (r *TerminalRenderer) Present() {
	if r.ClearCmd != "" {
		cmd := exec.Command(r.ClearCmd)
		cmd.Stdout = r.out
		if err := cmd.Run(); err != nil {
			fmt.Fprintln(r.out, "Error clearing terminal:", err)
		}
	}
	fmt.Fprint(r.out, r.String())
	if r.Status != nil {
		fmt.Fprintln(r.out, r.Status())
	}
}

// String returns the frame with a border around it
func (r *TerminalRenderer) String() string {
	var (
		sb    strings.Builder
		width = 0
	)
	if len(r.cells) > 0 {
		width = len(r.cells[0])
	}
	edge := "+" + strings.Repeat("-", width*len(gridPosEmpty)) + "+\n"

	sb.WriteString(edge)
	for _, row := range r.cells {
		sb.WriteString("|")
		for _, alive := range row {
			if alive {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(edge)
	return sb.String()
}

// IsDrawnAlive reports whether the cell at (x, y) was last drawn alive
func (r *TerminalRenderer) IsDrawnAlive(x, y int) bool {
	if y < 0 || y >= len(r.cells) || x < 0 || x >= len(r.cells[y]) {
		return false
	}
	return r.cells[y][x]
}

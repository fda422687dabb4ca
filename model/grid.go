package model

import (
	"github.com/sheikhrachel/canvas-gol/rules"
)

// neighborOffsets lists the 8 cells around (0, 0) as (dx, dy) pairs
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CellChange is a single entry of a generation diff
type CellChange struct {
	X, Y  int
	State uint8
}

// StepResult is what one generation step reports back to the driver
type StepResult struct {
	Changed    []CellChange
	AnyAlive   bool
	Population int
}

// Outcome classifies the result of a step
func (r StepResult) Outcome() Outcome {
	switch {
	case len(r.Changed) > 0:
		return Continuing
	case r.AnyAlive:
		return Stabilized
	default:
		return Extinct
	}
}

// Grid is a toroidal Game of Life board with a current and a scratch buffer.
// Cells are indexed [y][x], x in [0, width) and y in [0, height).
type Grid struct {
	width   int
	height  int
	current [][]uint8
	next    [][]uint8
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Reset(width, height)
	return g
}

func newBuffer(width, height int) [][]uint8 {
	buf := make([][]uint8, height)
	for i := range buf {
		buf[i] = make([]uint8, width)
	}
	return buf
}

// GetWidth returns the number of columns
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the number of rows
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset reallocates the buffers for new dimensions, or clears them when the
// dimensions are unchanged
func (g *Grid) Reset(width, height int) {
	if g.width == width && g.height == height && g.current != nil {
		g.Clear()
		return
	}
	g.width = width
	g.height = height
	g.current = newBuffer(width, height)
	g.next = newBuffer(width, height)
}

// Clear kills every cell in both buffers
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		clear(g.current[y])
		clear(g.next[y])
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false). Out of range cells are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.inBounds(x, y) {
		return
	}
	if alive {
		g.current[y][x] = rules.Alive
	} else {
		g.current[y][x] = rules.Dead
	}
}

// Get returns the state of a cell in the current generation
func (g *Grid) Get(x, y int) uint8 {
	if !g.inBounds(x, y) {
		return rules.Dead
	}
	return g.current[y][x]
}

// IsAlive reports whether a cell is alive in the current generation
func (g *Grid) IsAlive(x, y int) bool {
	return g.Get(x, y) == rules.Alive
}

// Toggle flips a cell and returns its new state
func (g *Grid) Toggle(x, y int) uint8 {
	if !g.inBounds(x, y) {
		return rules.Dead
	}
	g.current[y][x] ^= 1
	return g.current[y][x]
}

// wrap maps an index one step outside [0, bound) to the opposite edge
func wrap(i, bound int) int {
	if i < 0 {
		return bound - 1
	}
	if i >= bound {
		return 0
	}
	return i
}

// NeighborCount counts living neighbours with toroidal wraparound. Counting
// stops once the total passes rules.Overpopulation since the cell dies anyway.
func (g *Grid) NeighborCount(x, y int) int {
	count := 0
	for _, off := range neighborOffsets {
		if count > rules.Overpopulation {
			break
		}
		nx := wrap(x+off[0], g.width)
		ny := wrap(y+off[1], g.height)
		count += int(g.current[ny][nx])
	}
	return count
}

// NextState returns the state a cell takes in the next generation
func (g *Grid) NextState(x, y int) uint8 {
	return rules.NextState(g.current[y][x], g.NeighborCount(x, y))
}

// Step computes the next generation into the scratch buffer from the current
// one, then commits only the changed cells. An empty diff leaves the grid
// untouched.
func (g *Grid) Step() StepResult {
	var res StepResult
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			state := g.NextState(x, y)
			g.next[y][x] = state
			if state == rules.Alive {
				res.AnyAlive = true
				res.Population++
			}
			if state != g.current[y][x] {
				res.Changed = append(res.Changed, CellChange{X: x, Y: y, State: state})
			}
		}
	}

	for _, c := range res.Changed {
		g.current[c.Y][c.X] = c.State
	}
	return res
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			count += int(g.current[y][x])
		}
	}
	return
}

package model

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// Point is a cell position on the grid
type Point struct {
	X, Y int
}

// patterns holds the live cells of each named seed, relative to its top-left corner
var patterns = map[string][]Point{
	// still life
	"block":   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"beehive": {{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}},
	// oscillator
	"blinker": {{0, 0}, {1, 0}, {2, 0}},
	// spaceship
	"glider": {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
}

// PatternNames returns the known pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternCells places a named pattern at (originX, originY) on a width x height
// torus and returns the cells it occupies
func PatternCells(name string, originX, originY, width, height int) ([]Point, error) {
	shape, ok := patterns[name]
	if !ok {
		return nil, errors.Errorf("[PatternCells] unknown pattern: %q", name)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[PatternCells] invalid grid size %dx%d", width, height)
	}

	cells := make([]Point, 0, len(shape))
	for _, p := range shape {
		cells = append(cells, Point{
			X: mod(originX+p.X, width),
			Y: mod(originY+p.Y, height),
		})
	}
	return cells, nil
}

// RandomCells picks each cell of a width x height grid with the given probability
func RandomCells(width, height int, density float64, rng *rand.Rand) []Point {
	var cells []Point
	if density <= 0 {
		return cells
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() < density {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

func mod(i, n int) int {
	return ((i % n) + n) % n
}

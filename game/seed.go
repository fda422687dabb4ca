package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/canvas-gol/model"
	"github.com/sheikhrachel/canvas-gol/utils"
)

// SeedCells collects the initial live cells requested by the configuration
func SeedCells(config utils.Config) ([]model.Point, error) {
	var cells []model.Point
	for _, p := range config.Patterns {
		placed, err := model.PatternCells(p.Name, p.X, p.Y, config.Cols, config.Rows)
		if err != nil {
			return nil, errors.Wrapf(err, "[SeedCells] failed to place pattern %+v", p)
		}
		cells = append(cells, placed...)
	}

	if config.RandomDensity > 0 {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		cells = append(cells, model.RandomCells(config.Cols, config.Rows, config.RandomDensity, rng)...)
	}
	return cells, nil
}

// Seed clicks every listed cell that is not alive yet, the way a user would,
// presents once and returns how many were flipped
func (d *Driver) Seed(cells []model.Point) int {
	flipped := 0
	for _, c := range cells {
		if d.grid.IsAlive(c.X, c.Y) {
			continue
		}
		if d.toggle(c.X*d.opts.CellSize, c.Y*d.opts.CellSize) {
			flipped++
		}
	}
	if flipped > 0 {
		d.renderer.Present()
	}
	return flipped
}

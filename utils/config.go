package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

const (
	ModeWindow   = "window"
	ModeTerminal = "terminal"
)

// PatternPlacement seeds a named pattern with its top-left cell at (X, Y)
type PatternPlacement struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Config holds the configuration for the game
type Config struct {
	Rows          int                `json:"rows"`
	Cols          int                `json:"cols"`
	CellSize      int                `json:"cell_size"`
	FPS           int                `json:"fps"`
	Mode          string             `json:"mode"`
	WindowTitle   string             `json:"window_title"`
	Patterns      []PatternPlacement `json:"patterns"`
	RandomDensity float64            `json:"random_density"`
	Seed          int64              `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:        50,
		Cols:        100,
		CellSize:    15,
		FPS:         5,
		Mode:        ModeWindow,
		WindowTitle: "Game of Life",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the grid can be built from the configuration
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Cols, c.Rows)
	case c.CellSize <= 0:
		return errors.Errorf("[Validate] cell_size must be positive, got %d", c.CellSize)
	case c.FPS <= 0:
		return errors.Errorf("[Validate] fps must be positive, got %d", c.FPS)
	case c.Mode != ModeWindow && c.Mode != ModeTerminal:
		return errors.Errorf("[Validate] unknown mode %q", c.Mode)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	return nil
}

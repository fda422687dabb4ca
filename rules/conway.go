package rules

// Birth and death thresholds for Conway's Game of Life.
const (
	// Overpopulation is the neighbour count above which a live cell dies.
	Overpopulation = 3
	// Underpopulation is the neighbour count below which a live cell dies.
	Underpopulation = 2
	// Newborn is the exact neighbour count that brings a dead cell to life.
	Newborn = 3
)

// Cell states
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

/*
NextState applies Conway's Game of Life rules to a single cell.

A live cell with more than Overpopulation or fewer than Underpopulation
neighbours dies, a dead cell with exactly Newborn neighbours is born,
every other cell keeps its state.
*/
func NextState(state uint8, neighbors int) uint8 {
	switch {
	case state == Alive && (neighbors > Overpopulation || neighbors < Underpopulation):
		return Dead
	case state == Dead && neighbors == Newborn:
		return Alive
	default:
		return state
	}
}

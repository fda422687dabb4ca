package model

// Outcome is the result of a generation step
type Outcome int

const (
	// Continuing means the generation changed at least one cell
	Continuing Outcome = iota
	// Stabilized means nothing changed and some cells are alive
	Stabilized
	// Extinct means nothing changed and every cell is dead
	Extinct
)

func (o Outcome) String() string {
	switch o {
	case Continuing:
		return "continuing"
	case Stabilized:
		return "stabilized"
	case Extinct:
		return "extinct"
	default:
		return "unknown"
	}
}

// Message is the user-facing notification for a terminal outcome
func (o Outcome) Message() string {
	switch o {
	case Stabilized:
		return "Our civilization has reached harmony!"
	case Extinct:
		return "Our civilization has perished :("
	default:
		return ""
	}
}

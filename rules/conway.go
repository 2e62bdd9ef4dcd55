package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Classification is the outcome of the rule for a single cell
type Classification uint8

const (
	// Ignored means the cell keeps its current state
	Ignored Classification = iota
	// Live means the cell is born
	Live
	// Die means the cell dies
	Die
)

// String returns the lower-case name of the classification
func (c Classification) String() string {
	switch c {
	case Ignored:
		return "ignored"
	case Live:
		return "live"
	case Die:
		return "die"
	default:
		return "unknown"
	}
}

/*
Classify reports what happens to a cell in the next generation as a change event.

Only state transitions produce an event: a dead cell with exactly 3 neighbors is born
(Live), a live cell with anything other than 2 or 3 neighbors dies (Die). Every other
combination, including survival, is Ignored.
*/
func Classify(neighbors int, alive bool) Classification {
	if neighbors == 2 {
		return Ignored
	}
	switch {
	case !alive && neighbors == 3:
		return Live
	case alive && neighbors != 3:
		return Die
	default:
		return Ignored
	}
}

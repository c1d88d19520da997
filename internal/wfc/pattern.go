// Package wfc implements a wave function collapse constraint solver over a
// grid of pattern possibility sets: cells are collapsed in minimum-entropy
// order and adjacency constraints are propagated with a stack until the grid
// is fully assigned or a contradiction is found.
package wfc

import "errors"

var (
	// ErrInvalidSize is returned when a grid dimension is not positive.
	ErrInvalidSize = errors.New("wfc: width and height must be positive")
	// ErrNoPatterns is returned when Solve is given an empty pattern set.
	ErrNoPatterns = errors.New("wfc: at least one pattern is required")
	// ErrDuplicatePattern is returned when two patterns share an id.
	ErrDuplicatePattern = errors.New("wfc: duplicate pattern id")
	// ErrInvalidWeight is returned when a pattern has a negative weight.
	ErrInvalidWeight = errors.New("wfc: pattern weight must not be negative")
)

// Direction identifies one of the four cardinal neighbors of a cell.
type Direction int

const (
	// North is the cell above (y-1).
	North Direction = iota
	// South is the cell below (y+1).
	South
	// East is the cell to the right (x+1).
	East
	// West is the cell to the left (x-1).
	West
)

// directionCount is the number of cardinal directions.
const directionCount = 4

// deltas maps a Direction to its (dx, dy) step.
var deltas = [directionCount][2]int{
	North: {0, -1},
	South: {0, 1},
	East:  {1, 0},
	West:  {-1, 0},
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Pattern is one tile pattern the solver can place. Allowed lists, per
// direction, the pattern ids permitted in the neighboring cell on that side.
// An id absent from every list simply never appears next to this pattern.
type Pattern struct {
	ID      int
	Weight  float64 // selection weight for the collapse draw
	Allowed map[Direction][]int
}

// Allows returns true if other may sit in the given direction from p.
func (p Pattern) Allows(dir Direction, other int) bool {
	for _, id := range p.Allowed[dir] {
		if id == other {
			return true
		}
	}
	return false
}

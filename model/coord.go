package model

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// ErrCoordinateOverflow is returned when a cell is too close to the edge of the int range
// for its neighborhood to be enumerated without wrapping
var ErrCoordinateOverflow = errors.New("coordinate overflow")

// overflowMargin keeps neighbors of a checked cell able to enumerate their own neighbors
const overflowMargin = 2

// Coord identifies a cell on the infinite plane
type Coord struct {
	X, Y int
}

// Add returns the coordinate translated by d
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// neighborOffsets lists the 8 neighbor offsets in enumeration order
var neighborOffsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the 8 cells at Chebyshev distance 1 from c
func Neighbors(c Coord) []Coord {
	result := make([]Coord, 0, 8)
	for _, d := range neighborOffsets {
		result = append(result, c.Add(d))
	}
	return result
}

// CheckCoord returns ErrCoordinateOverflow if c sits too close to the int range extremes
func CheckCoord(c Coord) error {
	if !inRange(c.X) || !inRange(c.Y) {
		return errors.Wrapf(ErrCoordinateOverflow, "cell (%d, %d)", c.X, c.Y)
	}
	return nil
}

func inRange(v int) bool {
	return v >= math.MinInt+overflowMargin && v <= math.MaxInt-overflowMargin
}

// LiveSet is the set of live cells of a generation
type LiveSet map[Coord]struct{}

// NewLiveSet builds a set from the given cells, ignoring duplicates
func NewLiveSet(cells ...Coord) LiveSet {
	s := make(LiveSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add marks c as live
func (s LiveSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Remove marks c as dead
func (s LiveSet) Remove(c Coord) {
	delete(s, c)
}

// Contains reports whether c is live
func (s LiveSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the population
func (s LiveSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set
func (s LiveSet) Clone() LiveSet {
	out := make(LiveSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same cells
func (s LiveSet) Equal(other LiveSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Translate returns a copy of the set shifted by d
func (s LiveSet) Translate(d Coord) LiveSet {
	out := make(LiveSet, len(s))
	for c := range s {
		out[c.Add(d)] = struct{}{}
	}
	return out
}

// Sorted returns the cells ordered by X then Y
func (s LiveSet) Sorted() []Coord {
	cells := make([]Coord, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sortCoords(cells)
	return cells
}

func sortCoords(cells []Coord) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})
}

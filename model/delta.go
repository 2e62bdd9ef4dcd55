package model

import (
	"sort"

	"github.com/sheikhrachel/go-life/rules"
)

// Change records a birth or death produced by one generation step
type Change struct {
	Kind rules.Classification
	Pos  Coord
}

/*
Board is the state of the incremental delta engine: the live set plus the changes that
the next Advance will apply to it.

Advance never mutates a Board; it returns a new one built from fresh collections.
*/
type Board struct {
	Live    LiveSet
	Changes []Change

	// Examined is the number of frontier cells classified to produce Changes
	Examined int
}

// NewBoard returns an empty board whose pending changes bring every seed cell to life
func NewBoard(seed []Coord) Board {
	cells := NewLiveSet(seed...).Sorted()
	changes := make([]Change, 0, len(cells))
	for _, c := range cells {
		changes = append(changes, Change{Kind: rules.Live, Pos: c})
	}
	return Board{Live: LiveSet{}, Changes: changes}
}

// ApplyChanges returns a new live set with deaths removed and births added
func ApplyChanges(live LiveSet, changes []Change) LiveSet {
	next := live.Clone()
	for _, ch := range changes {
		if ch.Kind == rules.Die {
			next.Remove(ch.Pos)
		}
	}
	for _, ch := range changes {
		if ch.Kind == rules.Live {
			next.Add(ch.Pos)
		}
	}
	return next
}

/*
Affected returns the frontier of a change list: every changed cell together with its
8 neighbors. Only these cells can see a different neighbor count, or a different own state,
in the next step.
*/
func Affected(changes []Change) (LiveSet, error) {
	frontier := make(LiveSet, len(changes)*9)
	for _, ch := range changes {
		if err := CheckCoord(ch.Pos); err != nil {
			return nil, err
		}
		frontier.Add(ch.Pos)
		for _, d := range neighborOffsets {
			frontier.Add(ch.Pos.Add(d))
		}
	}
	return frontier, nil
}

// ComputeChanges classifies every affected cell against live and keeps the births and deaths
func ComputeChanges(live, affected LiveSet) []Change {
	var changes []Change
	for c := range affected {
		if kind := ClassifyCell(live, c); kind != rules.Ignored {
			changes = append(changes, Change{Kind: kind, Pos: c})
		}
	}
	sort.Slice(changes, func(i, j int) bool {
		a, b := changes[i].Pos, changes[j].Pos
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	return changes
}

// Advance applies the pending changes and computes the changes for the following step
func (b Board) Advance() (Board, error) {
	live := ApplyChanges(b.Live, b.Changes)
	affected, err := Affected(b.Changes)
	if err != nil {
		return Board{}, err
	}
	return Board{
		Live:     live,
		Changes:  ComputeChanges(live, affected),
		Examined: affected.Len(),
	}, nil
}

// Next returns the live set the pending changes produce
func (b Board) Next() LiveSet {
	return ApplyChanges(b.Live, b.Changes)
}

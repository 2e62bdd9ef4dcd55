package model

import "github.com/sheikhrachel/go-life/rules"

// DenseAdvance computes the next generation by recounting the neighborhood of every live cell
func DenseAdvance(live LiveSet) (LiveSet, error) {
	return DenseAdvanceCounts(live, make(map[Coord]int, len(live)*8))
}

/*
DenseAdvanceCounts is DenseAdvance with a caller supplied scratch map for the neighbor counts.

The map must be empty. Every neighbor of a live cell gets one increment per live cell next
to it; the next generation is every counted cell for which ApplyConwayRules holds.
*/
func DenseAdvanceCounts(live LiveSet, counts map[Coord]int) (LiveSet, error) {
	for c := range live {
		if err := CheckCoord(c); err != nil {
			return nil, err
		}
		for _, d := range neighborOffsets {
			counts[c.Add(d)]++
		}
	}

	next := make(LiveSet, len(live))
	for c, n := range counts {
		if rules.ApplyConwayRules(n, live.Contains(c)) {
			next[c] = struct{}{}
		}
	}
	return next, nil
}

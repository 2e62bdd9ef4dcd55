package model

import "github.com/sheikhrachel/go-life/rules"

// CountNeighbors counts the live cells among the 8 neighbors of c
func CountNeighbors(live LiveSet, c Coord) int {
	count := 0
	for _, d := range neighborOffsets {
		if live.Contains(c.Add(d)) {
			count++
		}
	}
	return count
}

// ClassifyCell applies the Life rule to c against the given live set
func ClassifyCell(live LiveSet, c Coord) rules.Classification {
	return rules.Classify(CountNeighbors(live, c), live.Contains(c))
}

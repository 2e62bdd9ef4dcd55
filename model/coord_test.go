package model

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/rules"
)

func TestNeighbors(t *testing.T) {
	got := Neighbors(Coord{0, 0})
	require.Len(t, got, 8)
	assert.Equal(t, 8, cap(got))
	assert.ElementsMatch(t, []Coord{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}, got)

	// fixed order, shifted by the cell
	shifted := Neighbors(Coord{1, 1})
	for i := range got {
		assert.Equal(t, got[i].Add(Coord{1, 1}), shifted[i])
	}
	assert.NotContains(t, shifted, Coord{1, 1})
}

func TestCheckCoord(t *testing.T) {
	tests := []struct {
		name string
		c    Coord
		ok   bool
	}{
		{"origin", Coord{0, 0}, true},
		{"far but safe", Coord{math.MaxInt - 2, math.MinInt + 2}, true},
		{"max x", Coord{math.MaxInt, 0}, false},
		{"near max y", Coord{0, math.MaxInt - 1}, false},
		{"min x", Coord{math.MinInt, 0}, false},
		{"near min y", Coord{0, math.MinInt + 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCoord(tt.c)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrCoordinateOverflow), "got %v", err)
		})
	}
}

func TestLiveSet(t *testing.T) {
	s := NewLiveSet(Coord{0, 0}, Coord{1, 2}, Coord{0, 0})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(Coord{1, 2}))
	assert.False(t, s.Contains(Coord{2, 1}))

	c := s.Clone()
	c.Add(Coord{5, 5})
	c.Remove(Coord{0, 0})
	assert.Equal(t, 2, s.Len(), "clone must not share storage")
	assert.True(t, s.Contains(Coord{0, 0}))
	assert.False(t, s.Equal(c))

	assert.True(t, NewLiveSet(Coord{1, 1}, Coord{2, 3}).Equal(s.Translate(Coord{1, 1})))

	assert.Equal(t, []Coord{{-1, 5}, {-1, 7}, {0, 0}, {3, -2}},
		NewLiveSet(Coord{3, -2}, Coord{-1, 7}, Coord{0, 0}, Coord{-1, 5}).Sorted())
}

func TestClassifyCell(t *testing.T) {
	blinker := NewLiveSet(Coord{0, -1}, Coord{0, 0}, Coord{0, 1})

	tests := []struct {
		c    Coord
		want rules.Classification
	}{
		{Coord{0, 0}, rules.Ignored}, // 2 neighbors, survives
		{Coord{0, 1}, rules.Die},     // 1 neighbor
		{Coord{0, -1}, rules.Die},    // 1 neighbor
		{Coord{1, 0}, rules.Live},    // 3 neighbors, born
		{Coord{-1, 0}, rules.Live},   // 3 neighbors, born
		{Coord{1, 1}, rules.Ignored}, // 2 neighbors, stays dead
		{Coord{5, 5}, rules.Ignored}, // isolated
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCell(blinker, tt.c), "cell %v", tt.c)
	}
}

func TestCountNeighborsIgnoresSelf(t *testing.T) {
	block := NewLiveSet(Coord{0, 0}, Coord{0, 1}, Coord{1, 0}, Coord{1, 1})
	for c := range block {
		assert.Equal(t, 3, CountNeighbors(block, c))
	}
	assert.Equal(t, 0, CountNeighbors(NewLiveSet(Coord{0, 0}), Coord{0, 0}))
}

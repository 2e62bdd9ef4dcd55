package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBBox(t *testing.T) {
	tests := []struct {
		name string
		live LiveSet
		want BoundingBox
	}{
		{"empty", LiveSet{}, BoundingBox{Min: Coord{0, 0}, Max: Coord{1, 1}}},
		{"single", NewLiveSet(Coord{-4, 7}), BoundingBox{Min: Coord{-4, 7}, Max: Coord{-4, 7}}},
		{
			"r-pentomino",
			NewLiveSet(Coord{0, 0}, Coord{0, 1}, Coord{1, 1}, Coord{-1, 0}, Coord{0, -1}),
			BoundingBox{Min: Coord{-1, -1}, Max: Coord{1, 1}},
		},
		{
			"spread",
			NewLiveSet(Coord{100, -3}, Coord{-20, 50}),
			BoundingBox{Min: Coord{-20, -3}, Max: Coord{100, 50}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BBox(tt.live))
		})
	}
}

func TestBoundingBoxDimensions(t *testing.T) {
	box := BoundingBox{Min: Coord{-1, -2}, Max: Coord{2, 2}}
	assert.Equal(t, 4, box.Width())
	assert.Equal(t, 5, box.Height())
	assert.Equal(t, Coord{0, 0}, box.Center())

	empty := BBox(nil)
	assert.Equal(t, 2, empty.Width())
	assert.Equal(t, 2, empty.Height())
}

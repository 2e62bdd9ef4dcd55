package model

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRLEAcorn(t *testing.T) {
	in := "#N Acorn\n" +
		"#C A methuselah with lifespan 5206.\n" +
		"x = 7, y = 3, rule = B3/S23\n" +
		"bo5b$3bo3b$2o2b3o!\n"

	cells, err := ParseRLE(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Coord{
		{-2, 2},
		{0, 1},
		{-3, 0}, {-2, 0}, {1, 0}, {2, 0}, {3, 0},
	}, cells)
	assert.True(t, NewLiveSet(mustPattern(t, "acorn")...).Equal(NewLiveSet(cells...)))
}

func TestParseRLERPentomino(t *testing.T) {
	in := "#N R-pentomino\n" +
		"x = 3, y = 0, rule = B3/S23\n" +
		"b2o$2ob$bo!"

	cells, err := ParseRLE(strings.NewReader(in))
	require.NoError(t, err)
	assert.True(t, NewLiveSet(mustPattern(t, "r-pentomino")...).Equal(NewLiveSet(cells...)),
		"got %v", cells)
}

func TestParseRLEMultiLineAndRunRows(t *testing.T) {
	// two blocks separated by an empty row, body split across lines
	in := "x = 2, y = 5\n2o$2o2$\n2o$2o!"

	cells, err := ParseRLE(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Coord{
		{-1, 3}, {0, 3},
		{-1, 2}, {0, 2},
		{-1, 0}, {0, 0},
		{-1, -1}, {0, -1},
	}, cells)
}

func TestParseRLEStopsAtBang(t *testing.T) {
	cells, err := ParseRLE(strings.NewReader("x = 1, y = 1\no!\nthis is ignored"))
	require.NoError(t, err)
	assert.Equal(t, []Coord{{0, 1}}, cells)
}

func TestParseRLEErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bad header", "x = seven\nbo!"},
		{"unknown char", "x = 3, y = 1\nbzo!"},
		{"other rule", "x = 3, y = 1, rule = B36/S23\n3o!"},
		{"run overflows int", "x = 3, y = 1\n99999999999999999999b2o!"},
		{"run leaves the plane", "x = 3, y = 1\n9223372036854775807b9223372036854775807b2o!"},
		{"live run leaves the plane", "x = 3, y = 1\n9223372036854775807o!"},
		{"rows leave the plane", "x = 1, y = 1\n9223372036854775807$9223372036854775807$o!"},
		{"too many cells", "x = 1, y = 1\n16777217o!"},
		{"trailing run", "x = 3, y = 1\n3o5"},
		{"run before end", "x = 3, y = 1\n3o2!"},
		{"header size overflows int", "x = 99999999999999999999, y = 1\no!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRLE(strings.NewReader(tt.in))
			assert.True(t, errors.Is(err, ErrInvalidRLE), "got %v", err)
		})
	}
}

func TestPattern(t *testing.T) {
	assert.Equal(t, []string{"acorn", "blinker", "block", "glider", "r-pentomino"}, PatternNames())

	a := mustPattern(t, "glider")
	a[0] = Coord{99, 99}
	assert.NotEqual(t, a[0], mustPattern(t, "glider")[0], "patterns are returned as copies")

	_, err := Pattern("gosper")
	assert.True(t, errors.Is(err, ErrUnknownPattern))
}

package model

import (
	"bufio"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownPattern is returned by Pattern for names not in the catalogue
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrInvalidRLE is returned for malformed run-length encoded input
	ErrInvalidRLE = errors.New("invalid RLE")
)

// patterns holds the built-in seeds, y growing upward
var patterns = map[string][]Coord{
	"r-pentomino": {{0, 0}, {0, 1}, {1, 1}, {-1, 0}, {0, -1}},
	"glider":      {{-1, 1}, {0, 1}, {1, 1}, {1, 0}, {0, -1}},
	"blinker":     {{0, -1}, {0, 0}, {0, 1}},
	"block":       {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	"acorn":       {{-2, 2}, {0, 1}, {-3, 0}, {-2, 0}, {1, 0}, {2, 0}, {3, 0}},
}

// Pattern returns a copy of the named built-in seed
func Pattern(name string) ([]Coord, error) {
	cells, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	return append([]Coord(nil), cells...), nil
}

// PatternNames returns the built-in pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// maxRLECells bounds the number of live cells a pattern file may declare
const maxRLECells = 1 << 24

var rleHeader = regexp.MustCompile(`^x\s*=\s*(\d+)\s*,\s*y\s*=\s*(\d+)(?:\s*,\s*rule\s*=\s*(\S+))?`)

// rleDecoder tracks the cursor while decoding pattern lines
type rleDecoder struct {
	startX int
	x, y   int
	run    string
	cells  []Coord
	done   bool
}

func (d *rleDecoder) runLength() (int, error) {
	if d.run == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(d.run)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidRLE, "run length %q", d.run)
	}
	d.run = ""
	return n, nil
}

// moveRight shifts the cursor n columns, staying inside the range CheckCoord accepts
func (d *rleDecoder) moveRight(n int) error {
	if d.x > 0 && n > math.MaxInt-overflowMargin-d.x {
		return errors.Wrapf(ErrInvalidRLE, "run of %d from x=%d leaves the plane", n, d.x)
	}
	if x := d.x + n; inRange(x) {
		d.x = x
		return nil
	}
	return errors.Wrapf(ErrInvalidRLE, "run of %d from x=%d leaves the plane", n, d.x)
}

// moveDown shifts the cursor n rows toward decreasing y
func (d *rleDecoder) moveDown(n int) error {
	if d.y < 0 && n > d.y-(math.MinInt+overflowMargin) {
		return errors.Wrapf(ErrInvalidRLE, "run of %d rows from y=%d leaves the plane", n, d.y)
	}
	if y := d.y - n; inRange(y) {
		d.y = y
		return nil
	}
	return errors.Wrapf(ErrInvalidRLE, "run of %d rows from y=%d leaves the plane", n, d.y)
}

func (d *rleDecoder) decode(line string) error {
	for _, ch := range line {
		if d.done {
			return nil
		}
		if ch >= '0' && ch <= '9' {
			d.run += string(ch)
			continue
		}
		if ch == ' ' || ch == '\t' || ch == '\r' {
			continue
		}

		var n int
		if ch == 'b' || ch == 'o' || ch == '$' {
			var err error
			if n, err = d.runLength(); err != nil {
				return err
			}
		}
		switch ch {
		case 'b':
			if err := d.moveRight(n); err != nil {
				return err
			}
		case 'o':
			x := d.x
			if err := d.moveRight(n); err != nil {
				return err
			}
			if len(d.cells)+n > maxRLECells {
				return errors.Wrapf(ErrInvalidRLE, "pattern exceeds %d cells", maxRLECells)
			}
			for i := range n {
				d.cells = append(d.cells, Coord{X: x + i, Y: d.y})
			}
		case '$':
			if err := d.moveDown(n); err != nil {
				return err
			}
			d.x = d.startX
		case '!':
			d.done = true
		default:
			return errors.Wrapf(ErrInvalidRLE, "unexpected character %q", ch)
		}
	}
	return nil
}

/*
ParseRLE decodes a pattern in the Life run-length encoding.

Comment lines start with '#'. The header "x = W, y = H" places the pattern's top-left cell at
(-(W/2), H/2+1) so that the pattern sits roughly around the origin; rows run downward, toward
decreasing y. Patterns declaring a rule other than B3/S23 are rejected.
*/
func ParseRLE(r io.Reader) ([]Coord, error) {
	var (
		d       rleDecoder
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "x") {
			m := rleHeader.FindStringSubmatch(line)
			if m == nil {
				return nil, errors.Wrapf(ErrInvalidRLE, "unable to parse header %q", line)
			}
			if rule := m[3]; rule != "" && !isConwayRule(rule) {
				return nil, errors.Wrapf(ErrInvalidRLE, "unsupported rule %q", rule)
			}
			w, errW := strconv.Atoi(m[1])
			h, errH := strconv.Atoi(m[2])
			if errW != nil || errH != nil {
				return nil, errors.Wrapf(ErrInvalidRLE, "header size out of range %q", line)
			}
			d.startX, d.x, d.y = -(w / 2), -(w / 2), h/2+1
			continue
		}
		if err := d.decode(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseRLE] failed to read pattern")
	}
	if d.run != "" {
		return nil, errors.Wrapf(ErrInvalidRLE, "run length %q without a tag", d.run)
	}
	return d.cells, nil
}

func isConwayRule(rule string) bool {
	switch strings.ToUpper(rule) {
	case "B3/S23", "23/3":
		return true
	}
	return false
}

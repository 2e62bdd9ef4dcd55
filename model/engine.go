package model

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownEngine is returned by NewEngine for names that were never registered
var ErrUnknownEngine = errors.New("unknown engine")

/*
Engine is a stateful driver around one of the advance functions.

After Reset, Live returns the seed as generation 0; each Step advances exactly one
generation. The set returned by Live must not be modified by the caller.
*/
type Engine interface {
	Name() string
	Reset(seed []Coord) error
	Step() error
	Live() LiveSet
	Generation() int
	// Examined returns the number of cells evaluated by the last Step
	Examined() int
}

// EngineFactory constructs a fresh engine
type EngineFactory func() Engine

var engines = map[string]EngineFactory{}

// RegisterEngine adds an engine factory under the provided name
func RegisterEngine(name string, f EngineFactory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// NewEngine returns a new engine registered under name
func NewEngine(name string) (Engine, error) {
	f, ok := engines[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEngine, "%q", name)
	}
	return f(), nil
}

// EngineNames returns the registered engine names in sorted order
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterEngine(DenseEngineName, func() Engine { return NewDenseEngine(NewCountPool()) })
	RegisterEngine(DeltaEngineName, func() Engine { return NewDeltaEngine() })
}

// Names of the built-in engines
const (
	DenseEngineName = "dense"
	DeltaEngineName = "delta"
)

// DenseEngine drives DenseAdvance, recycling its count maps through a pool
type DenseEngine struct {
	pool       *CountPool
	live       LiveSet
	generation int
	examined   int
}

// NewDenseEngine returns a dense engine; pool may be nil
func NewDenseEngine(pool *CountPool) *DenseEngine {
	return &DenseEngine{pool: pool, live: LiveSet{}}
}

func (e *DenseEngine) Name() string { return DenseEngineName }

// Reset starts over from the seed
func (e *DenseEngine) Reset(seed []Coord) error {
	live := NewLiveSet(seed...)
	for c := range live {
		if err := CheckCoord(c); err != nil {
			return err
		}
	}
	e.live, e.generation, e.examined = live, 0, 0
	return nil
}

// Step advances one generation
func (e *DenseEngine) Step() error {
	var counts map[Coord]int
	if e.pool != nil {
		counts = e.pool.Get()
	} else {
		counts = make(map[Coord]int, e.live.Len()*8)
	}

	next, err := DenseAdvanceCounts(e.live, counts)
	e.examined = len(counts)
	CountsToPool(counts, e.pool)
	if err != nil {
		return err
	}

	e.live = next
	e.generation++
	return nil
}

func (e *DenseEngine) Live() LiveSet   { return e.live }
func (e *DenseEngine) Generation() int { return e.generation }
func (e *DenseEngine) Examined() int   { return e.examined }

// DeltaEngine drives Board.Advance
type DeltaEngine struct {
	board      Board
	generation int
	examined   int
}

func NewDeltaEngine() *DeltaEngine {
	return &DeltaEngine{board: NewBoard(nil)}
}

func (e *DeltaEngine) Name() string { return DeltaEngineName }

// Reset starts over from the seed; the first advance only applies the seed births
func (e *DeltaEngine) Reset(seed []Coord) error {
	board, err := NewBoard(seed).Advance()
	if err != nil {
		return err
	}
	e.board, e.generation, e.examined = board, 0, 0
	return nil
}

// Step advances one generation
func (e *DeltaEngine) Step() error {
	next, err := e.board.Advance()
	if err != nil {
		return err
	}
	e.board = next
	e.examined = next.Examined
	e.generation++
	return nil
}

func (e *DeltaEngine) Live() LiveSet   { return e.board.Live }
func (e *DeltaEngine) Generation() int { return e.generation }
func (e *DeltaEngine) Examined() int   { return e.examined }

// Board returns the current engine state
func (e *DeltaEngine) Board() Board { return e.board }

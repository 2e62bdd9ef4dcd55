package model

import "sync"

// CountsToPool returns a counts map to the pool for reuse
func CountsToPool(counts map[Coord]int, pool *CountPool) {
	if pool == nil {
		return
	}

	pool.Put(counts)
}

// CountPool recycles the neighbor-count scratch maps of the dense engine
type CountPool struct {
	pool sync.Pool
}

func NewCountPool() *CountPool {
	return &CountPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(map[Coord]int)
			},
		},
	}
}

// Get retrieves an empty counts map
func (p *CountPool) Get() map[Coord]int {
	return p.pool.Get().(map[Coord]int)
}

// Put returns a counts map to the pool, clearing its state
func (p *CountPool) Put(counts map[Coord]int) {
	// Clear the map before returning to pool
	clear(counts)
	p.pool.Put(counts)
}

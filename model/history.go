package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// historySize is the number of recent generations remembered for cycle detection
const historySize = 5

// History remembers digests of recent live sets to detect still lifes and short cycles
type History struct {
	hashes []string
}

// LiveSetHash returns an MD5 digest of the live set, independent of map iteration order
func LiveSetHash(live LiveSet) string {
	var (
		h   = md5.New()
		buf [16]byte
	)
	for _, c := range live.Sorted() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Update adds the live set to the history and maintains its size
func (h *History) Update(live LiveSet) {
	h.hashes = append(h.hashes, LiveSetHash(live))

	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether live repeats one of the last 3 recorded generations
func (h *History) IsStagnant(live LiveSet) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := LiveSetHash(live)
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}

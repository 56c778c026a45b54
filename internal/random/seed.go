// Package random provides seed generation and seeded sources for name
// generation. A zero seed always means "pick one at random".
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random non-zero seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}

// Resolve returns seed unchanged when it is non-zero, or a fresh random seed
func Resolve(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	return NewSeed()
}

// New returns a generator seeded with seed, or with a random seed when it is zero.
// The generator is not safe for concurrent use.
func New(seed int64) (*rand.Rand, error) {
	resolved, err := Resolve(seed)
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(resolved)), nil
}

// Weighted picks an index with probability proportional to its weight.
// It returns -1 when no weight is positive.
func Weighted(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	target := rng.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if target < w {
			return i
		}
		target -= w
	}
	return last
}

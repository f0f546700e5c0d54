package vmath

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// Source is the uniform randomness consumed by every weighted decision in the game
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// IntN returns a value in [0, n); n must be positive
	IntN(n int) int
}

// NewSource returns a PCG source seeded from seed, or from the clock when seed is 0
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FastRand is a xorshift64 generator, cheap enough for per-tick draws
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

var (
	ErrNoChoices = errors.New("weighted choice over no items")
	ErrBadWeight = errors.New("weighted choice with invalid weights")
)

// Choice pairs an item with its relative weight
type Choice[T any] struct {
	Item   T
	Weight float64
}

// WeightedChoice draws one item with probability proportional to its weight
// Items are walked in slice order, so a fixed Source yields a fixed result
func WeightedChoice[T any](rng Source, choices []Choice[T]) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, ErrNoChoices
	}

	total := 0.0
	for _, c := range choices {
		if c.Weight < 0 || math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
			return zero, fmt.Errorf("%w: weight %v", ErrBadWeight, c.Weight)
		}
		total += c.Weight
	}
	if total <= 0 || math.IsInf(total, 0) {
		return zero, fmt.Errorf("%w: total %v over %d items", ErrBadWeight, total, len(choices))
	}

	r := rng.Float64() * total
	for _, c := range choices {
		if c.Weight == 0 {
			continue
		}
		if r < c.Weight {
			return c.Item, nil
		}
		r -= c.Weight
	}

	// Float drift can leave r just above the last weight; fall back to the last drawable item
	for i := len(choices) - 1; i >= 0; i-- {
		if choices[i].Weight > 0 {
			return choices[i].Item, nil
		}
	}
	return zero, ErrBadWeight
}

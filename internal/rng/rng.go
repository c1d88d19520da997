// Package rng provides the deterministic random source used by every
// generator. Each generation call owns its own Source; there is no shared
// package-level state, so interleaved calls cannot disturb each other's
// sequences.
package rng

import "math/rand"

// cardinal step deltas in a fixed order: north, south, east, west.
var directions = [4][2]int{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

// Source is a seeded pseudo-random source for generation.
type Source struct {
	r *rand.Rand
}

// New creates a deterministic Source from the given seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n). It returns 0 when n <= 0 so callers
// probing empty ranges near edges do not have to special-case them.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// Range returns a uniform int in [lo, hi]. When hi <= lo it returns lo.
func (s *Source) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// FloatRange returns a uniform float64 in [lo, hi).
func (s *Source) FloatRange(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Bool returns a fair random boolean.
func (s *Source) Bool() bool {
	return s.r.Intn(2) == 0
}

// Direction returns a uniformly chosen cardinal step as (dx, dy).
func (s *Source) Direction() (dx, dy int) {
	d := directions[s.r.Intn(4)]
	return d[0], d[1]
}

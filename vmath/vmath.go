package vmath

import "math"

// Approach moves current toward target by at most step, never overshooting
func Approach(current, target, step float64) float64 {
	if step < 0 {
		step = -step
	}
	if current < target {
		return math.Min(current+step, target)
	}
	if current > target {
		return math.Max(current-step, target)
	}
	return current
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// --- Randomness ---

// FastRand is a xorshift64 source; same seed gives the same sequence
type FastRand struct {
	state uint64
}

// NewFastRand seeds a source; a zero seed is replaced since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	r := &FastRand{state: seed}
	if r.state == 0 {
		r.state = 1
	}
	return r
}

// Next advances the xorshift64 state (13, 17, 5) and returns it
func (r *FastRand) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return r.state
}

// Intn returns a value in [0, n); 0 when n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Chance returns true with probability p
func (r *FastRand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

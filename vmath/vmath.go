package vmath

import "math"

// --- Arithmetic ---

// Clamp limits v to [lo, hi]; when hi < lo the result is lo
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sign returns -1, 0, or 1
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Approach moves current toward target by at most step without overshooting
func Approach(current, target, step float64) float64 {
	d := target - current
	return current + Sign(d)*math.Min(math.Abs(d), step)
}

// --- Randomness ---

// Rand is the random source consumed by gameplay code
// Satisfied by *FastRand and *math/rand.Rand
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// FastRand is a xorshift64 generator
// Deterministic for a given seed, not safe for concurrent use
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

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

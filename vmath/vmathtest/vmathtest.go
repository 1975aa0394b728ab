// Package vmathtest provides deterministic vmath.Rand sources for tests
package vmathtest

// ConstRand always returns the same draws, forcing probability gates open or shut
// Intn clamps Int into [0, n)
type ConstRand struct {
	Float float64
	Int   int
}

func (r ConstRand) Float64() float64 {
	return r.Float
}

func (r ConstRand) Intn(n int) int {
	if n <= 0 || r.Int < 0 {
		return 0
	}
	if r.Int >= n {
		return n - 1
	}
	return r.Int
}

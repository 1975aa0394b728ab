package status

import (
	"math"
	"sync/atomic"
)

// Float is a float64 gauge stored as its IEEE-754 bits
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *Float) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

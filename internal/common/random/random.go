package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/dicetray/internal/common/random Source

// Source yields uniformly distributed floats in [0, 1)
type Source interface {
	Float64() float64
}

// New returns a math/rand backed Source.
// A zero seed picks one from the current time.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Between draws a value uniformly from [lo, hi)
func Between(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

package random

import (
	"math/rand/v2"

	"github.com/hailam/fillfile/internal/ports"
)

// New returns a PCG-backed source. A zero seed picks a random one.
func New(seed int64) ports.RandomSource {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

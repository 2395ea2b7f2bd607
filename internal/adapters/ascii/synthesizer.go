package ascii

import (
	"math"

	"github.com/hailam/fillfile/internal/ports"
)

// Bytes are drawn from [lowerBound, upperBound). That includes the control
// characters 21..31, which earlier releases also emitted.
const lowerBound, upperBound = 21, 126

// AsciiSynthesizer produces random bytes in [21, 125].
type AsciiSynthesizer struct {
	source ports.RandomSource
}

// New creates an ascii synthesizer drawing from source.
func New(source ports.RandomSource) ports.ContentSynthesizer {
	return &AsciiSynthesizer{source: source}
}

// Synthesize maps one random draw v in [0, 1) to each byte as
// 21 + floor(v * 105).
func (s *AsciiSynthesizer) Synthesize(size uint64) ([]byte, error) {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = byte(lowerBound + math.Floor(s.source.Float64()*(upperBound-lowerBound)))
	}
	return buf, nil
}

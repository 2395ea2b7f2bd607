package zero

import "github.com/hailam/fillfile/internal/ports"

// ZeroSynthesizer produces zero-filled content.
type ZeroSynthesizer struct{}

// New creates a zero-fill synthesizer.
func New() ports.ContentSynthesizer {
	return &ZeroSynthesizer{}
}

func (z *ZeroSynthesizer) Synthesize(size uint64) ([]byte, error) {
	return make([]byte, size), nil
}

package lorem

import (
	"math"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/hailam/fillfile/internal/ports"
)

// AverageWordLength is the measured mean length of a lorem ipsum word,
// including the separator that follows it.
const AverageWordLength = 6.793286

// ErrWordSourceExhausted is returned when the word source yields an empty
// batch, which would otherwise stall the fill loop.
var ErrWordSourceExhausted = errors.NewKind("word source returned no words")

// LoremSynthesizer produces lorem ipsum text.
type LoremSynthesizer struct {
	words ports.WordSource
}

// New creates a lorem synthesizer drawing from words.
func New(words ports.WordSource) ports.ContentSynthesizer {
	return &LoremSynthesizer{words: words}
}

// Synthesize requests word batches sized from the bytes still missing until
// at least size bytes are buffered, then cuts the buffer to exactly size.
// Batches are joined with a single space.
func (s *LoremSynthesizer) Synthesize(size uint64) ([]byte, error) {
	buf := make([]byte, 0, size)
	for uint64(len(buf)) < size {
		missing := size - uint64(len(buf))
		count := int(math.Ceil(float64(missing) / AverageWordLength))

		batch := s.words.Words(count)
		if batch == "" {
			return nil, ErrWordSourceExhausted.New()
		}
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, batch...)
	}
	return buf[:size], nil
}

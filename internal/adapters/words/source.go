package words

import (
	"strings"

	"github.com/go-loremipsum/loremipsum"

	"github.com/hailam/fillfile/internal/ports"
)

// LoremIpsumSource adapts a loremipsum generator to ports.WordSource.
type LoremIpsumSource struct {
	gen *loremipsum.LoremIpsum
}

// New returns a word source. A zero seed leaves seeding to the generator.
func New(seed int64) ports.WordSource {
	if seed == 0 {
		return &LoremIpsumSource{gen: loremipsum.New()}
	}
	return &LoremIpsumSource{gen: loremipsum.NewWithSeed(seed)}
}

// Words draws count words one at a time. The generator's own Words slices
// a fixed vocabulary and cannot return more words than it holds.
func (s *LoremIpsumSource) Words(count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.gen.Word())
	}
	return b.String()
}

package factory

import (
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/hailam/fillfile/internal/adapters/ascii"
	"github.com/hailam/fillfile/internal/adapters/lorem"
	"github.com/hailam/fillfile/internal/adapters/zero"
	"github.com/hailam/fillfile/internal/ports"
)

// ErrUnknownContentMode is returned by For when no synthesizer serves the mode.
var ErrUnknownContentMode = errors.NewKind("no synthesizer for content mode %q")

// StaticSynthesizerFactory provides concrete implementations for ContentSynthesizers.
type StaticSynthesizerFactory struct {
	synthesizers map[ports.ContentMode]ports.ContentSynthesizer
}

// NewStaticSynthesizerFactory creates a factory whose ascii and lorem
// synthesizers draw from the given sources.
func NewStaticSynthesizerFactory(random ports.RandomSource, words ports.WordSource) ports.SynthesizerFactory {
	return &StaticSynthesizerFactory{
		synthesizers: map[ports.ContentMode]ports.ContentSynthesizer{
			ports.ContentModeZero:  zero.New(),
			ports.ContentModeASCII: ascii.New(random),
			ports.ContentModeLorem: lorem.New(words),
		},
	}
}

// For returns the ContentSynthesizer registered for mode.
func (f *StaticSynthesizerFactory) For(mode ports.ContentMode) (ports.ContentSynthesizer, error) {
	synth, ok := f.synthesizers[mode]
	if !ok {
		return nil, ErrUnknownContentMode.New(mode)
	}
	return synth, nil
}

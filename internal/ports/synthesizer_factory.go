package ports

// SynthesizerFactory is the port for looking up synthesizers by ContentMode.
type SynthesizerFactory interface {
	// For returns a ContentSynthesizer for the given mode, or an error if unsupported.
	For(mode ContentMode) (ContentSynthesizer, error)
}

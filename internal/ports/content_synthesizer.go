package ports

// ContentSynthesizer is the port for anything that can produce file content.
type ContentSynthesizer interface {
	// Synthesize returns exactly size bytes.
	Synthesize(size uint64) ([]byte, error)
}

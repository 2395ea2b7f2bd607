package ports

// FileWriter persists synthesized content.
type FileWriter interface {
	// Write creates or truncates path and stores data in it.
	Write(path string, data []byte) error
}

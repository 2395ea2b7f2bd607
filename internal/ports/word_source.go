package ports

// WordSource yields pseudo-text.
type WordSource interface {
	// Words returns count words separated by single spaces.
	Words(count int) string
}

package ports

// ContentMode is the identifier for each kind of content.
type ContentMode string

const (
	ContentModeZero  ContentMode = "zero"
	ContentModeASCII ContentMode = "ascii"
	ContentModeLorem ContentMode = "lorem"
)

package ports

import "github.com/hailam/fillfile/internal/utils"

// SizeParser parses size expressions (like "10mb") into a FileSize.
type SizeParser interface {
	Parse(expr string) (utils.FileSize, error)
}

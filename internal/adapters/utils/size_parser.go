package utils

import (
	"github.com/hailam/fillfile/internal/ports"
	"github.com/hailam/fillfile/internal/utils"
)

// UtilSizeParser adapts the utils.ParseSize function to the ports.SizeParser interface.
type UtilSizeParser struct{}

// NewUtilSizeParser creates a new size parser adapter.
func NewUtilSizeParser() ports.SizeParser {
	return &UtilSizeParser{}
}

func (p *UtilSizeParser) Parse(expr string) (utils.FileSize, error) {
	return utils.ParseSize(expr)
}

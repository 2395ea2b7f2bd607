package application

import (
	"path/filepath"
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrIncompatibleAsciiLorem is returned when both content flags are set.
	ErrIncompatibleAsciiLorem = errors.NewKind("You cannot pass --ascii and --lorem at the same time")
	// ErrDirectoryPassed is returned when the output path has no extension.
	ErrDirectoryPassed = errors.NewKind("Invalid path passed! Directory was passed instead of file")
)

// ValidateRequest checks the output path first and the content flags second.
// Neither check touches the filesystem.
func ValidateRequest(req Request) error {
	if !hasExtension(req.Path) {
		return ErrDirectoryPassed.New()
	}
	if req.Ascii && req.Lorem {
		return ErrIncompatibleAsciiLorem.New()
	}
	return nil
}

// hasExtension reports whether the last element of path splits into a stem
// and an extension. A single leading dot belongs to the stem, so ".env" has
// no extension while "a." and ".env.local" do. A trailing separator always
// names a directory.
func hasExtension(path string) bool {
	if path == "" || strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return false
	}
	name := filepath.Base(path)
	switch name {
	case ".", "..", string(filepath.Separator):
		return false
	}
	return strings.Contains(strings.TrimPrefix(name, "."), ".")
}

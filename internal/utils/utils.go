package utils

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrInvalidAmountForSize is returned when the numeric prefix of a size
	// expression is missing, malformed or does not fit in 64 bits.
	ErrInvalidAmountForSize = errors.NewKind("Invalid amount passed for the size")
	// ErrInvalidTypeForSize is returned when the unit suffix is not one of b, kb, mb or gb.
	ErrInvalidTypeForSize = errors.NewKind("Invalid type passed for size! Valid options are 'b', 'kb', 'mb' and 'gb'")
)

// SizeUnit is the unit part of a size expression.
type SizeUnit int

const (
	Byte SizeUnit = iota
	KiloByte
	MegaByte
	GigaByte
)

// ByteFactor returns how many bytes one unit holds.
func (u SizeUnit) ByteFactor() uint64 {
	switch u {
	case KiloByte:
		return 1 << 10
	case MegaByte:
		return 1 << 20
	case GigaByte:
		return 1 << 30
	default:
		return 1
	}
}

func (u SizeUnit) String() string {
	switch u {
	case KiloByte:
		return "kb"
	case MegaByte:
		return "mb"
	case GigaByte:
		return "gb"
	default:
		return "b"
	}
}

// ParseSizeUnit matches a unit token case-insensitively. Only exact matches
// count: "k", "kib" or " kb" are all rejected.
func ParseSizeUnit(token string) (SizeUnit, error) {
	switch strings.ToLower(token) {
	case "b":
		return Byte, nil
	case "kb":
		return KiloByte, nil
	case "mb":
		return MegaByte, nil
	case "gb":
		return GigaByte, nil
	default:
		return Byte, ErrInvalidTypeForSize.New()
	}
}

// FileSize is a parsed size expression such as "10mb".
type FileSize struct {
	Amount uint64
	Unit   SizeUnit
}

// ByteCount returns Amount multiplied by the unit factor. A product that does
// not fit in 64 bits is reported as an invalid amount rather than wrapped.
func (s FileSize) ByteCount() (uint64, error) {
	hi, lo := bits.Mul64(s.Amount, s.Unit.ByteFactor())
	if hi != 0 {
		return 0, ErrInvalidAmountForSize.New()
	}
	return lo, nil
}

func (s FileSize) String() string {
	return fmt.Sprintf("%d%s", s.Amount, s.Unit)
}

// ParseSize parses strings like "500b", "10KB", "4mb" or "1Gb".
//
// The leading run of ASCII digits is the amount and everything after the first
// non-digit is the unit, so "10k5b" has the unit "k5b" and is rejected. The
// amount is checked before the unit.
func ParseSize(sizeStr string) (FileSize, error) {
	split := strings.IndexFunc(sizeStr, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if split < 0 {
		split = len(sizeStr)
	}

	amount, err := strconv.ParseUint(sizeStr[:split], 10, 64)
	if err != nil {
		return FileSize{}, ErrInvalidAmountForSize.New()
	}

	unit, err := ParseSizeUnit(sizeStr[split:])
	if err != nil {
		return FileSize{}, err
	}
	return FileSize{Amount: amount, Unit: unit}, nil
}

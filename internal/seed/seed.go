package seed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// ErrInvalid indicates that a seed string could not be converted.
//
// It wraps the underlying cast or safemath error.
var ErrInvalid = errors.New("invalid seed")

// Width is the set of seed types accepted by the hash variants.
type Width interface {
	uint32 | uint64
}

// Parse converts s to a seed of type T.
func Parse[T Width](s string) (T, error) {
	var zero T

	s = strings.TrimSpace(s)
	if s == "" {
		return zero, fmt.Errorf("%w: empty", ErrInvalid)
	}
	if strings.Contains(s, ".") {
		return zero, fmt.Errorf("%w %q: not an integer", ErrInvalid, s)
	}

	wide, err := cast.ToE[uint64](s)
	if err != nil {
		return zero, fmt.Errorf("%w %q: %w", ErrInvalid, s, err)
	}

	narrow, err := safemath.ConvertAny[T](wide)
	if err != nil {
		return zero, fmt.Errorf("%w %q: %w", ErrInvalid, s, err)
	}

	return narrow, nil
}

// ParseBits converts s to a seed that fits in bits (32 or 64) and returns it
// widened to uint64.
func ParseBits(s string, bits int) (uint64, error) {
	switch bits {
	case 32:
		v, err := Parse[uint32](s)
		return uint64(v), err
	case 64:
		return Parse[uint64](s)
	default:
		return 0, fmt.Errorf("%w: unsupported width %d", ErrInvalid, bits)
	}
}

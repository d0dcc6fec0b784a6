package murmur2

import (
	"fmt"
	"math"
	"strings"
)

// Variant selects one member of the MurmurHash2 family. Pick it once, from
// configuration, rather than probing the platform.
type Variant uint8

const (
	Variant2 Variant = iota + 1
	Variant2A
	VariantNeutral2
	VariantAligned2
	Variant64A
	Variant64B
	VariantNeutral64A
)

var variantNames = [...]string{
	Variant2:          "2",
	Variant2A:         "2a",
	VariantNeutral2:   "neutral2",
	VariantAligned2:   "aligned2",
	Variant64A:        "64a",
	Variant64B:        "64b",
	VariantNeutral64A: "neutral64a",
}

// Variants lists every known variant in declaration order.
func Variants() []Variant {
	return []Variant{
		Variant2, Variant2A, VariantNeutral2, VariantAligned2,
		Variant64A, Variant64B, VariantNeutral64A,
	}
}

// ParseVariant returns the variant called name (case-insensitive), as
// printed by [Variant.String].
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range Variants() {
		if variantNames[v] == name {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

func (v Variant) String() string {
	if v.valid() {
		return variantNames[v]
	}

	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Size returns the digest width of v in bytes: 4 or 8, or 0 for an unknown
// variant.
func (v Variant) Size() int {
	switch v {
	case Variant2, Variant2A, VariantNeutral2, VariantAligned2:
		return 4
	case Variant64A, Variant64B, VariantNeutral64A:
		return 8
	default:
		return 0
	}
}

// Neutral reports whether v yields the same digest on every host byte order.
func (v Variant) Neutral() bool {
	return v == VariantNeutral2 || v == VariantNeutral64A
}

// Sum hashes data with v. 32-bit digests are returned zero-extended.
//
// A seed above [math.MaxUint32] for a 32-bit variant fails with
// [ErrSeedOverflow] rather than being truncated.
func (v Variant) Sum(data []byte, seed uint64) (uint64, error) {
	if v.Size() == 4 && seed > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %#x does not fit %s", ErrSeedOverflow, seed, v)
	}

	switch v {
	case Variant2:
		return uint64(sum32(data, uint32(seed))), nil
	case Variant2A:
		return uint64(sum32A(data, uint32(seed))), nil
	case VariantNeutral2:
		return uint64(sumNeutral32(data, uint32(seed))), nil
	case VariantAligned2:
		return uint64(sumAligned32(data, uint32(seed))), nil
	case Variant64A:
		return sum64A(data, seed), nil
	case Variant64B:
		return sum64B(data, seed), nil
	case VariantNeutral64A:
		return sumNeutral64A(data, seed), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
}

func (v Variant) valid() bool {
	return v >= Variant2 && v <= VariantNeutral64A
}

// MarshalText implements [encoding.TextMarshaler].
func (v Variant) MarshalText() ([]byte, error) {
	if !v.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}

	return []byte(variantNames[v]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

package murmur2_test

import (
	"errors"
	"math"
	"testing"

	"go.dw1.io/murmurhash/hash/murmur2"
)

func TestParseVariantRoundTrip(t *testing.T) {
	for _, v := range murmur2.Variants() {
		got, err := murmur2.ParseVariant(v.String())
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", v.String(), err)
		}
		if got != v {
			t.Fatalf("ParseVariant(%q) = %v, want %v", v.String(), got, v)
		}

		text, err := v.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", v, err)
		}
		var back murmur2.Variant
		if err := back.UnmarshalText(text); err != nil || back != v {
			t.Fatalf("UnmarshalText(%q) = %v, %v", text, back, err)
		}
	}

	if v, err := murmur2.ParseVariant(" 64A "); err != nil || v != murmur2.Variant64A {
		t.Fatalf("ParseVariant should be case-insensitive, got %v, %v", v, err)
	}

	if _, err := murmur2.ParseVariant("murmur3"); !errors.Is(err, murmur2.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestVariantSumDispatch(t *testing.T) {
	data := []byte("dispatch me")
	const seed = 0x9747b28c

	tests := []struct {
		v    murmur2.Variant
		want uint64
		size int
	}{
		{murmur2.Variant2, uint64(murmur2.Sum32WithSeed(data, seed)), 4},
		{murmur2.Variant2A, uint64(murmur2.Sum32AWithSeed(data, seed)), 4},
		{murmur2.VariantNeutral2, uint64(murmur2.SumNeutral32WithSeed(data, seed)), 4},
		{murmur2.VariantAligned2, uint64(murmur2.SumAligned32WithSeed(data, seed)), 4},
		{murmur2.Variant64A, murmur2.Sum64AWithSeed(data, seed), 8},
		{murmur2.Variant64B, murmur2.Sum64BWithSeed(data, seed), 8},
		{murmur2.VariantNeutral64A, murmur2.SumNeutral64AWithSeed(data, seed), 8},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			got, err := tt.v.Sum(data, seed)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Sum = %#x, want %#x", got, tt.want)
			}
			if tt.v.Size() != tt.size {
				t.Fatalf("Size = %d, want %d", tt.v.Size(), tt.size)
			}
		})
	}
}

func TestVariantSeedOverflow(t *testing.T) {
	if _, err := murmur2.Variant2A.Sum(nil, math.MaxUint32+1); !errors.Is(err, murmur2.ErrSeedOverflow) {
		t.Fatalf("expected ErrSeedOverflow, got %v", err)
	}

	if _, err := murmur2.Variant64A.Sum(nil, math.MaxUint64); err != nil {
		t.Fatalf("64-bit variant should accept any seed: %v", err)
	}
}

func TestUnknownVariant(t *testing.T) {
	var v murmur2.Variant
	if v.Size() != 0 {
		t.Fatalf("zero Variant size = %d, want 0", v.Size())
	}
	if _, err := v.Sum([]byte("x"), 0); !errors.Is(err, murmur2.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	if _, err := v.MarshalText(); !errors.Is(err, murmur2.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant from MarshalText, got %v", err)
	}
	if got := murmur2.Variant(200).String(); got != "Variant(200)" {
		t.Fatalf("String = %q", got)
	}
}

func TestNeutralFlag(t *testing.T) {
	for _, v := range murmur2.Variants() {
		want := v == murmur2.VariantNeutral2 || v == murmur2.VariantNeutral64A
		if v.Neutral() != want {
			t.Fatalf("%v.Neutral() = %v, want %v", v, v.Neutral(), want)
		}
	}
}

package murmur2

import "encoding/binary"

// Multiplier and shift of the 32-bit and 64-bit mixing steps.
const (
	m32 = uint32(0x5bd1e995)
	r32 = 24

	m64 = uint64(0xc6a4a7935bd1e995)
	r64 = 47
)

// Sum32 returns the MurmurHash2 of data with seed 0.
func Sum32(data []byte) uint32 { return sum32(data, 0) }

// Sum32WithSeed returns the MurmurHash2 of data with the provided seed.
//
// Blocks are read as native words, so the digest is only stable between
// hosts of the same byte order.
func Sum32WithSeed(data []byte, seed uint32) uint32 { return sum32(data, seed) }

// Sum32A returns the MurmurHash2A of data with seed 0.
func Sum32A(data []byte) uint32 { return sum32A(data, 0) }

// Sum32AWithSeed returns the MurmurHash2A of data with the provided seed.
// It equals what a [Digest32A] produces for the same bytes, however they are
// split across writes.
func Sum32AWithSeed(data []byte, seed uint32) uint32 { return sum32A(data, seed) }

// SumNeutral32 returns the MurmurHashNeutral2 of data with seed 0.
func SumNeutral32(data []byte) uint32 { return sumNeutral32(data, 0) }

// SumNeutral32WithSeed returns the MurmurHashNeutral2 of data with the
// provided seed. The digest is identical on every host.
func SumNeutral32WithSeed(data []byte, seed uint32) uint32 { return sumNeutral32(data, seed) }

// mix folds the block k into the accumulator h.
func mix(h, k uint32) uint32 {
	k *= m32
	k ^= k >> r32
	k *= m32

	h *= m32
	h ^= k

	return h
}

// tail32 assembles up to three trailing bytes, first byte lowest, the same
// way on every host.
func tail32(b []byte) uint32 {
	var t uint32
	for i := len(b) - 1; i >= 0; i-- {
		t = t<<8 | uint32(b[i])
	}

	return t
}

// foldTail xors the trailing bytes into h and multiplies once; an empty tail
// leaves h untouched.
func foldTail(h uint32, b []byte) uint32 {
	if len(b) == 0 {
		return h
	}

	h ^= tail32(b)
	h *= m32

	return h
}

func avalanche32(h uint32) uint32 {
	h ^= h >> 13
	h *= m32
	h ^= h >> 15

	return h
}

func sum32(b []byte, seed uint32) uint32 {
	h := seed ^ uint32(len(b))

	for ; len(b) >= 4; b = b[4:] {
		h = mix(h, binary.NativeEndian.Uint32(b))
	}

	return avalanche32(foldTail(h, b))
}

// sum32A mixes the blocks, then the tail word (even when empty), then the
// total length. Digest32A depends on this exact order.
func sum32A(b []byte, seed uint32) uint32 {
	l := uint32(len(b))
	h := seed

	for ; len(b) >= 4; b = b[4:] {
		h = mix(h, binary.NativeEndian.Uint32(b))
	}

	h = mix(h, tail32(b))
	h = mix(h, l)

	return avalanche32(h)
}

func sumNeutral32(b []byte, seed uint32) uint32 {
	h := seed ^ uint32(len(b))

	for ; len(b) >= 4; b = b[4:] {
		k := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		h = mix(h, k)
	}

	return avalanche32(foldTail(h, b))
}

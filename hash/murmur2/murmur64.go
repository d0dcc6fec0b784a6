package murmur2

import "encoding/binary"

// Sum64A returns the MurmurHash64A of data with seed 0.
func Sum64A(data []byte) uint64 { return sum64A(data, 0) }

// Sum64AWithSeed returns the MurmurHash64A of data with the provided seed.
//
// Blocks are read as native 64-bit words, so the digest is only stable
// between hosts of the same byte order.
func Sum64AWithSeed(data []byte, seed uint64) uint64 { return sum64A(data, seed) }

// Sum64B returns the MurmurHash64B of data with seed 0.
func Sum64B(data []byte) uint64 { return sum64B(data, 0) }

// Sum64BWithSeed returns the MurmurHash64B of data with the provided seed.
//
// MurmurHash64B only uses 32-bit arithmetic. It is a different function from
// [Sum64AWithSeed], not a slower path to the same digest.
func Sum64BWithSeed(data []byte, seed uint64) uint64 { return sum64B(data, seed) }

// SumNeutral64A returns the MurmurHash64ANeutral of data with seed 0.
func SumNeutral64A(data []byte) uint64 { return sumNeutral64A(data, 0) }

// SumNeutral64AWithSeed returns the MurmurHash64ANeutral of data with the
// provided seed. The digest is identical on every host and matches
// [Sum64AWithSeed] on little-endian hosts.
func SumNeutral64AWithSeed(data []byte, seed uint64) uint64 { return sumNeutral64A(data, seed) }

// mix64 folds the block k into h. Unlike mix, the accumulator is xored before
// it is multiplied.
func mix64(h, k uint64) uint64 {
	k *= m64
	k ^= k >> r64
	k *= m64

	h ^= k
	h *= m64

	return h
}

// finish64 folds up to seven trailing bytes into h and applies the final
// avalanche.
func finish64(h uint64, b []byte) uint64 {
	if len(b) > 0 {
		var t uint64
		for i := len(b) - 1; i >= 0; i-- {
			t = t<<8 | uint64(b[i])
		}
		h ^= t
		h *= m64
	}

	h ^= h >> r64
	h *= m64
	h ^= h >> r64

	return h
}

func sum64A(b []byte, seed uint64) uint64 {
	h := seed ^ uint64(len(b))*m64

	for ; len(b) >= 8; b = b[8:] {
		h = mix64(h, binary.NativeEndian.Uint64(b))
	}

	return finish64(h, b)
}

func sumNeutral64A(b []byte, seed uint64) uint64 {
	h := seed ^ uint64(len(b))*m64

	for ; len(b) >= 8; b = b[8:] {
		h = mix64(h, binary.LittleEndian.Uint64(b))
	}

	return finish64(h, b)
}

func sum64B(b []byte, seed uint64) uint64 {
	h1 := uint32(seed) ^ uint32(len(b))
	h2 := uint32(seed >> 32)

	for ; len(b) >= 8; b = b[8:] {
		h1 = mix(h1, binary.NativeEndian.Uint32(b))
		h2 = mix(h2, binary.NativeEndian.Uint32(b[4:]))
	}

	if len(b) >= 4 {
		h1 = mix(h1, binary.NativeEndian.Uint32(b))
		b = b[4:]
	}

	h2 = foldTail(h2, b)

	h1 ^= h2 >> 18
	h1 *= m32
	h2 ^= h1 >> 22
	h2 *= m32
	h1 ^= h2 >> 17
	h1 *= m32
	h2 ^= h1 >> 19
	h2 *= m32

	return uint64(h1)<<32 | uint64(h2)
}

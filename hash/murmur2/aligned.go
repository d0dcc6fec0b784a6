package murmur2

import (
	"encoding/binary"
	"unsafe"
)

// SumAligned32 returns the MurmurHashAligned2 of data with seed 0.
func SumAligned32(data []byte) uint32 { return sumAligned32(data, 0) }

// SumAligned32WithSeed returns the MurmurHashAligned2 of data with the
// provided seed.
//
// The result always equals [Sum32WithSeed] for the same bytes. When data does
// not start on a 4-byte boundary, every block is rebuilt from two aligned
// words instead of being loaded from an unaligned address, which is slower.
func SumAligned32WithSeed(data []byte, seed uint32) uint32 { return sumAligned32(data, seed) }

func sumAligned32(b []byte, seed uint32) uint32 {
	if len(b) < 4 {
		return sum32(b, seed)
	}

	align := int(uintptr(unsafe.Pointer(unsafe.SliceData(b))) & 3)
	if align == 0 {
		return sum32(b, seed)
	}

	return sumMisaligned32(b, seed, align)
}

// sumMisaligned32 hashes b as if it started align bytes past a word boundary.
// Only whole aligned words are loaded once the leading partial word is
// consumed.
func sumMisaligned32(b []byte, seed uint32, align int) uint32 {
	h := seed ^ uint32(len(b))

	lead := 4 - align
	sr := uint(8 * align)
	sl := uint(8 * lead)

	// Pre-load the leading bytes into the upper lanes of the first word.
	var t uint32
	for i := 0; i < lead; i++ {
		t |= lane(b[i], align+i)
	}

	i := lead
	for len(b)-i >= 4 {
		d := binary.NativeEndian.Uint32(b[i:])
		h = mix(h, splice(t, d, sr, sl))
		t = d
		i += 4
	}

	if len(b)-i >= align {
		var d uint32
		for j := 0; j < align; j++ {
			d |= lane(b[i+j], j)
		}
		h = mix(h, splice(t, d, sr, sl))
		i += align
	} else {
		// The bytes still held in t never completed a block; they are tail
		// bytes like the rest.
		i -= lead
	}

	return avalanche32(foldTail(h, b[i:]))
}

// lane places c in byte lane pos (0 = lowest address) of a native word.
func lane(c byte, pos int) uint32 {
	if littleEndian {
		return uint32(c) << (8 * pos)
	}

	return uint32(c) << (8 * (3 - pos))
}

// splice joins the high lanes of lo with the low lanes of hi into the native
// word that starts sr/8 bytes into lo.
func splice(lo, hi uint32, sr, sl uint) uint32 {
	if littleEndian {
		return lo>>sr | hi<<sl
	}

	return lo<<sr | hi>>sl
}

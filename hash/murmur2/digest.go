package murmur2

import (
	"encoding/binary"
	"hash"
)

// Compile-time interface assertions.
var _ hash.Hash = (*Digest32A)(nil)
var _ hash.Hash32 = (*Digest32A)(nil)

type digestState uint8

const (
	stateUninitialized digestState = iota
	stateActive
	stateFinalized
)

// Digest32A computes MurmurHash2A incrementally.
//
// The zero value is uninitialized; call [Digest32A.Init] or use [New32A] /
// [New32AWithSeed] before writing. A Digest32A must not be used from several
// goroutines without external synchronization.
type Digest32A struct {
	seed  uint32
	h     uint32
	tail  [4]byte
	n     int    // pending bytes in tail, 0..3 between writes
	size  uint32 // total length, modulo 2^32 like the one-shot form
	state digestState
}

// New32A returns an initialized MurmurHash2A hasher with seed 0.
func New32A() *Digest32A { return New32AWithSeed(0) }

// New32AWithSeed returns an initialized MurmurHash2A hasher seeded with seed.
func New32AWithSeed(seed uint32) *Digest32A {
	d := new(Digest32A)
	d.Init(seed)

	return d
}

// Init starts a fresh computation with seed, discarding any previous state.
func (d *Digest32A) Init(seed uint32) {
	*d = Digest32A{seed: seed, h: seed, state: stateActive}
}

// Write appends p to the running hash. Chunk boundaries do not affect the
// digest.
//
// It returns [ErrUninitialized] or [ErrFinalized] when the digest is not
// active; otherwise it always consumes all of p.
func (d *Digest32A) Write(p []byte) (int, error) {
	if err := d.active(); err != nil {
		return 0, err
	}

	n := len(p)
	d.size += uint32(n)

	if d.n > 0 {
		c := copy(d.tail[d.n:], p)
		d.n += c
		p = p[c:]

		if d.n < 4 {
			return n, nil
		}

		d.h = mix(d.h, binary.NativeEndian.Uint32(d.tail[:]))
		d.n = 0
	}

	for ; len(p) >= 4; p = p[4:] {
		d.h = mix(d.h, binary.NativeEndian.Uint32(p))
	}

	d.n = copy(d.tail[:], p)

	return n, nil
}

// Finalize returns the digest of everything written since Init. The digest
// is dead afterwards: further Write or Finalize calls fail with
// [ErrFinalized] until it is re-initialized.
func (d *Digest32A) Finalize() (uint32, error) {
	if err := d.active(); err != nil {
		return 0, err
	}

	d.state = stateFinalized

	return d.sum32(), nil
}

// Sum32 returns the digest of the data written so far without changing the
// state. It panics with [ErrUninitialized] on an uninitialized digest.
func (d *Digest32A) Sum32() uint32 {
	if d.state == stateUninitialized {
		panic(ErrUninitialized)
	}

	return d.sum32()
}

// Sum appends the current digest to b in big-endian order.
func (d *Digest32A) Sum(b []byte) []byte {
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], d.Sum32())

	return append(b, out[:]...)
}

// Reset re-initializes the digest with the seed of the last Init (0 for a
// zero value).
func (d *Digest32A) Reset() { d.Init(d.seed) }

// Size returns the digest size in bytes.
func (d *Digest32A) Size() int { return 4 }

// BlockSize returns the block size in bytes.
func (d *Digest32A) BlockSize() int { return 4 }

// Seed returns the seed of the current computation.
func (d *Digest32A) Seed() uint32 { return d.seed }

func (d *Digest32A) active() error {
	switch d.state {
	case stateUninitialized:
		return ErrUninitialized
	case stateFinalized:
		return ErrFinalized
	default:
		return nil
	}
}

// sum32 mixes the pending tail (even when empty) and the total length into a
// copy of the accumulator, mirroring sum32A.
func (d *Digest32A) sum32() uint32 {
	h := mix(d.h, tail32(d.tail[:d.n]))
	h = mix(h, d.size)

	return avalanche32(h)
}

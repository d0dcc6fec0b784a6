// Package murmur2 provides a Go implementation of the MurmurHash2 family of
// non-cryptographic hashes.
//
// It offers one-shot sums for the seven variants (MurmurHash2, MurmurHash2A,
// MurmurHashNeutral2, MurmurHashAligned2, MurmurHash64A, MurmurHash64B and
// MurmurHash64ANeutral) plus an incremental MurmurHash2A hasher that
// satisfies [hash.Hash32].
//
// # Byte order
//
// Variants without a "Neutral" qualifier load blocks as native machine words
// and are only reproducible between hosts of the same byte order. The
// Neutral variants always interpret blocks as little-endian and yield the
// same digest on every host. Sum64A and Sum64B are distinct algorithms and
// never agree with each other.
//
// None of the functions are suitable where collision resistance against an
// adversary matters.
package murmur2

package murmur2

import "errors"

// ErrUninitialized indicates that a [Digest32A] was used before [Digest32A.Init].
//
// It can be returned by Write and Finalize, and is the panic value of Sum32
// on an uninitialized digest.
var ErrUninitialized = errors.New("murmur2: digest is not initialized")

// ErrFinalized indicates that a [Digest32A] was written to or finalized again
// after [Digest32A.Finalize] without being re-initialized.
var ErrFinalized = errors.New("murmur2: digest is already finalized")

// ErrSeedOverflow indicates that a seed does not fit the width of a 32-bit
// variant.
//
// It can be wrapped by callers selecting variants at run time.
var ErrSeedOverflow = errors.New("murmur2: seed overflows variant width")

// ErrUnknownVariant indicates that a variant name could not be parsed.
var ErrUnknownVariant = errors.New("murmur2: unknown variant")

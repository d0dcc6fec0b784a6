// Package input opens the byte sources that murmur2sum hashes.
//
// Regular files are memory-mapped via [mmapfile] so one-shot variants can
// hash them without copying; when mmap is unavailable or unsuitable (empty
// files, pipes, special files) the package falls back to an [os.File] and
// callers either stream the data or read it whole. Standard input is exposed
// through the same [File] type.
package input

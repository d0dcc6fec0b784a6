package input

import (
	"bytes"
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

var (
	_ io.Reader   = (*File)(nil)
	_ io.WriterTo = (*File)(nil)
	_ io.Closer   = (*File)(nil)
)

// StdinName is the name under which standard input is reported.
const StdinName = "-"

// File is a hashing input backed by a memory mapping (preferred), an
// [os.File], or a plain reader for standard input.
type File struct {
	name string
	mm   *mmapfile.MmapFile
	os   *os.File
	r    io.Reader
}

// Open maps name into memory when possible; otherwise it falls back to
// os.Open.
func Open(name string) (*File, error) {
	mf, err := mmapfile.Open(name)
	if err == nil {
		return &File{name: name, mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{name: name, os: f}, nil
}

// FromReader wraps r under name. Close does not close r.
func FromReader(name string, r io.Reader) *File {
	return &File{name: name, r: r}
}

// Name returns the name the input was opened with.
func (f *File) Name() string { return f.name }

// Mapped reports whether the input is served from a memory mapping.
func (f *File) Mapped() bool { return f.mm != nil }

// Bytes returns the whole input. For a mapped file this is the mapped region
// itself and stays valid until Close; otherwise the remaining data is read
// into a new buffer.
func (f *File) Bytes() ([]byte, error) {
	if f.mm != nil {
		return f.mm.Bytes(), nil
	}

	if f.os != nil {
		var buf bytes.Buffer
		if n := f.Len(); n > 0 {
			buf.Grow(int(n))
		}
		if _, err := buf.ReadFrom(f.os); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}

	return io.ReadAll(f.r)
}

func (f *File) Read(p []byte) (int, error) {
	if f.mm != nil {
		return f.mm.Read(p)
	}
	if f.os != nil {
		return f.os.Read(p)
	}

	return f.r.Read(p)
}

// WriteTo streams the remaining input to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	if f.mm != nil {
		return f.mm.WriteTo(w)
	}
	if f.os != nil {
		return f.os.WriteTo(w)
	}

	return io.Copy(w, f.r)
}

// Len returns the input size in bytes, or -1 when it is unknown.
func (f *File) Len() int64 {
	if f.mm != nil {
		return int64(f.mm.Len())
	}
	if f.os != nil {
		info, err := f.os.Stat()
		if err != nil || !info.Mode().IsRegular() {
			return -1
		}

		return info.Size()
	}

	return -1
}

// Close releases the mapping or file. Readers passed to FromReader are left
// open.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}
	if f.os != nil {
		return f.os.Close()
	}

	return nil
}

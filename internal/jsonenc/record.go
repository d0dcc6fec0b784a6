package jsonenc

import (
	"fmt"
	"io"
)

// Record is one hashed input.
type Record struct {
	Path   string `json:"path"`
	Algo   string `json:"algo"`
	Seed   uint64 `json:"seed"`
	Digest string `json:"digest"`
	Size   int64  `json:"size"`
}

// Writer emits one JSON object per line.
type Writer struct {
	enc Encoder
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: NewEncoder(w)}
}

// Write encodes r followed by a newline.
func (w *Writer) Write(r Record) error {
	if err := w.enc.Encode(r); err != nil {
		return fmt.Errorf("encode %s: %w", r.Path, err)
	}

	return nil
}

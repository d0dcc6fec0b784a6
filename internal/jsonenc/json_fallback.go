//go:build !((linux || darwin || windows) && (amd64 || arm64))

package jsonenc

import (
	"encoding/json"
	"io"
)

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// NewEncoder creates a streaming encoder.
func NewEncoder(w io.Writer) Encoder {
	return json.NewEncoder(w)
}

// Encoder is a JSON encoder.
type Encoder interface {
	Encode(v any) error
}

//go:build (linux || darwin || windows) && (amd64 || arm64)

package jsonenc

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Unmarshal decodes data into v using the current API config.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// NewEncoder creates a streaming encoder using the current API config.
func NewEncoder(w io.Writer) Encoder {
	return api.NewEncoder(w)
}

// Encoder is a JSON encoder.
type Encoder = sonic.Encoder

package jsonenc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterEmitsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Write(Record{Path: "a.bin", Algo: "2a", Seed: 1, Digest: "0803888b", Size: 1}))
	require.NoError(t, w.Write(Record{Path: "-", Algo: "64a", Seed: 0, Digest: "0000000000000000", Size: 0}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var got Record
	require.NoError(t, Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, Record{Path: "a.bin", Algo: "2a", Seed: 1, Digest: "0803888b", Size: 1}, got)

	require.NoError(t, Unmarshal([]byte(lines[1]), &got))
	assert.Equal(t, "-", got.Path)
	assert.Equal(t, "64a", got.Algo)
}

func TestRecordFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).Write(Record{Path: "p", Algo: "2", Seed: 7, Digest: "ff", Size: 3}))
	assert.JSONEq(t, `{"path":"p","algo":"2","seed":7,"digest":"ff","size":3}`, buf.String())
}

func TestWriterMatchesEncodingJSON(t *testing.T) {
	rec := Record{Path: "dir/<a&b>.bin", Algo: "neutral64a", Seed: 1 << 40, Digest: "029a7747a564bd84", Size: 43}

	var got, want bytes.Buffer
	require.NoError(t, NewWriter(&got).Write(rec))
	require.NoError(t, json.NewEncoder(&want).Encode(rec))
	assert.Equal(t, want.String(), got.String())
}

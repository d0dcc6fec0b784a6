package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"go.dw1.io/murmurhash/hash/murmur2"
	"go.dw1.io/murmurhash/internal/input"
)

type result struct {
	path   string
	digest uint64
	size   int64
	err    error
}

type hasher struct {
	variant murmur2.Variant
	seed    uint64
	stdin   io.Reader
}

// takeStdin hands out standard input once; later callers get an empty stream,
// as after stdin has been read to EOF.
func (h *hasher) takeStdin() io.Reader {
	r := h.stdin
	h.stdin = bytes.NewReader(nil)

	return r
}

// hashAll hashes paths with at most jobs inputs in flight. Per-input failures
// are recorded in the results; only cancellation aborts the whole run.
func (h *hasher) hashAll(ctx context.Context, paths []string, jobs int) ([]result, error) {
	results := make([]result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}

		var stdin io.Reader
		if path == input.StdinName {
			stdin = h.takeStdin()
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			digest, size, err := h.hashPath(path, stdin)
			results[i] = result{path: path, digest: digest, size: size, err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (h *hasher) hashPath(path string, stdin io.Reader) (uint64, int64, error) {
	if stdin != nil {
		return h.hash(input.FromReader(path, stdin))
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, err
	}
	if info.IsDir() {
		return 0, 0, errors.New("is a directory")
	}

	f, err := input.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	log.Debugf("%s: %d bytes, mapped=%t", f.Name(), f.Len(), f.Mapped())

	return h.hash(f)
}

// hash computes the digest of f. MurmurHash2A input that is not memory-mapped
// is streamed through a Digest32A; everything else is hashed in one shot.
func (h *hasher) hash(f *input.File) (uint64, int64, error) {
	if h.variant == murmur2.Variant2A && !f.Mapped() {
		d := murmur2.New32AWithSeed(uint32(h.seed))

		n, err := f.WriteTo(d)
		if err != nil {
			return 0, n, fmt.Errorf("read %s: %w", f.Name(), err)
		}

		sum, err := d.Finalize()
		if err != nil {
			return 0, n, err
		}

		return uint64(sum), n, nil
	}

	data, err := f.Bytes()
	if err != nil {
		return 0, 0, fmt.Errorf("read %s: %w", f.Name(), err)
	}

	digest, err := h.variant.Sum(data, h.seed)
	if err != nil {
		return 0, 0, err
	}

	return digest, int64(len(data)), nil
}

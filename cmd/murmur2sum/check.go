package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.dw1.io/murmurhash/hash/murmur2"
	"go.dw1.io/murmurhash/internal/input"
	"go.dw1.io/murmurhash/internal/jsonenc"
)

type entry struct {
	digest uint64
	path   string
}

// parseList reads "<hex digest>  <path>" lines, or the JSON records written
// by --format json. A '*' before the path (binary mode marker) is accepted.
// Malformed lines, and JSON records of another variant, are counted and
// skipped.
func parseList(r io.Reader, v murmur2.Variant) ([]entry, int, error) {
	var (
		entries []entry
		bad     int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		e, ok := parseLine(line, v)
		if !ok {
			bad++
			continue
		}

		entries = append(entries, e)
	}

	return entries, bad, sc.Err()
}

func parseLine(line string, v murmur2.Variant) (entry, bool) {
	var digest, path string

	if strings.HasPrefix(strings.TrimSpace(line), "{") {
		var rec jsonenc.Record
		if err := jsonenc.Unmarshal([]byte(line), &rec); err != nil || rec.Algo != v.String() {
			return entry{}, false
		}
		digest, path = rec.Digest, rec.Path
	} else {
		var ok bool
		digest, path, ok = strings.Cut(line, " ")
		if !ok {
			return entry{}, false
		}
		path = strings.TrimPrefix(strings.TrimPrefix(path, " "), "*")
	}

	if len(digest) != v.Size()*2 || path == "" {
		return entry{}, false
	}

	d, err := strconv.ParseUint(digest, 16, 64)
	if err != nil {
		return entry{}, false
	}

	return entry{digest: d, path: path}, true
}

// check verifies every digest list in lists (stdin when empty) and prints one
// status line per entry.
func check(ctx context.Context, h *hasher, lists []string, opts options, w io.Writer) error {
	if len(lists) == 0 {
		lists = []string{input.StdinName}
	}

	var entries []entry
	malformed := 0
	for _, name := range lists {
		var f *input.File
		if name == input.StdinName {
			f = input.FromReader(name, h.takeStdin())
		} else {
			var err error
			if f, err = input.Open(name); err != nil {
				return err
			}
		}

		es, bad, err := parseList(f, opts.variant)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if bad > 0 {
			log.Warningf("%s: %d improperly formatted %s checksum lines", name, bad, opts.variant)
		}

		entries = append(entries, es...)
		malformed += bad
	}

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.path
	}

	results, err := h.hashAll(ctx, paths, opts.jobs)
	if err != nil {
		return err
	}

	unreadable, mismatched := 0, 0
	for i, r := range results {
		switch {
		case r.err != nil:
			unreadable++
			log.Errorf("%s: %v", r.path, r.err)
			fmt.Fprintf(w, "%s: FAILED open or read\n", r.path)
		case r.digest != entries[i].digest:
			mismatched++
			fmt.Fprintf(w, "%s: FAILED\n", r.path)
		case !opts.quiet:
			fmt.Fprintf(w, "%s: OK\n", r.path)
		}
	}

	if unreadable > 0 {
		log.Warningf("%d listed files could not be read", unreadable)
	}
	if mismatched > 0 {
		log.Warningf("%d computed checksums did NOT match", mismatched)
	}

	if unreadable > 0 || mismatched > 0 || (malformed > 0 && len(entries) == 0) {
		return errFailed
	}

	return nil
}

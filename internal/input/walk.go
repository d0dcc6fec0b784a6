package input

import (
	"io/fs"
	"path/filepath"
)

// Filter reports whether a file path should be hashed.
type Filter func(path string) bool

// Expand resolves the command-line operands into the list of inputs to hash,
// in order. Directories are descended into (lexical order) only when
// recursive is set; otherwise they are returned as-is so the caller reports
// them. keep, when non-nil, is applied to files found by walking and to
// explicit operands alike. The stdin name is passed through untouched.
func Expand(paths []string, recursive bool, keep Filter) ([]string, error) {
	if len(paths) == 0 {
		return []string{StdinName}, nil
	}

	var out []string
	for _, p := range paths {
		if p == StdinName {
			out = append(out, p)
			continue
		}

		if !recursive {
			if keep == nil || keep(p) {
				out = append(out, p)
			}
			continue
		}

		err := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if keep == nil || keep(path) {
				out = append(out, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

package match

import (
	"fmt"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Pattern is a compiled path pattern backed by either coregex or regexp2.
type Pattern struct {
	core *coregex.Regex
	pcre *regexp2.Regexp
}

// Compile parses expr, choosing the engine from the constructs it uses.
func Compile(expr string) (*Pattern, error) {
	if needsPCRE(expr) {
		re, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", expr, err)
		}

		return &Pattern{pcre: re}, nil
	}

	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}

	return &Pattern{core: re}, nil
}

// MatchString reports whether s contains a match of p. A regexp2 timeout or
// runtime error counts as no match.
func (p *Pattern) MatchString(s string) bool {
	if p.core != nil {
		return p.core.MatchString(s)
	}

	ok, err := p.pcre.MatchString(s)
	return err == nil && ok
}

// Set is a list of include and exclude patterns.
type Set struct {
	include []*Pattern
	exclude []*Pattern
}

// NewSet compiles include and exclude expressions.
func NewSet(include, exclude []string) (*Set, error) {
	s := &Set{}
	for _, expr := range include {
		p, err := Compile(expr)
		if err != nil {
			return nil, err
		}
		s.include = append(s.include, p)
	}
	for _, expr := range exclude {
		p, err := Compile(expr)
		if err != nil {
			return nil, err
		}
		s.exclude = append(s.exclude, p)
	}

	return s, nil
}

// Empty reports whether the set has no patterns at all.
func (s *Set) Empty() bool { return len(s.include) == 0 && len(s.exclude) == 0 }

// Keep reports whether path matches at least one include pattern (or there
// are none) and no exclude pattern.
func (s *Set) Keep(path string) bool {
	for _, p := range s.exclude {
		if p.MatchString(path) {
			return false
		}
	}

	if len(s.include) == 0 {
		return true
	}

	for _, p := range s.include {
		if p.MatchString(path) {
			return true
		}
	}

	return false
}

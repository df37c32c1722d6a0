package ignore

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Rules matches slash-separated relative paths against a fixed list of
// glob patterns. Patterns use gitignore-style matching: a bare name
// matches at any depth, and a pattern matching a directory also matches
// everything beneath it.
type Rules struct {
	matcher  gitignore.Matcher
	patterns []string
}

// New compiles the given patterns into a Rules matcher.
func New(patterns []string) *Rules {
	ps := make([]gitignore.Pattern, 0, len(patterns))
	for _, p := range patterns {
		ps = append(ps, gitignore.ParsePattern(p, nil))
	}
	return &Rules{
		matcher:  gitignore.NewMatcher(ps),
		patterns: patterns,
	}
}

// Match reports whether relPath matches any of the rules.
func (r *Rules) Match(relPath string) bool {
	if relPath == "" || relPath == "." {
		return false
	}
	return r.matcher.Match(strings.Split(relPath, "/"), false)
}

// Filter returns the paths that do not match any rule, preserving order.
func (r *Rules) Filter(paths []string) []string {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if !r.Match(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// Patterns returns the source patterns the rules were compiled from.
func (r *Rules) Patterns() []string {
	return r.patterns
}

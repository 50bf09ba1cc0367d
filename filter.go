package filemagic

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Filter selects signatures from a table. Patterns use glob syntax, so
// "image/*" keeps every image type and "{zip,epub}" keeps two extensions.
// An empty pattern list keeps everything.
type Filter struct {
	MIMETypes  []string
	Extensions []string
}

// Apply returns the signatures accepted by f, in their original order.
func (f Filter) Apply(sigs []Signature) ([]Signature, error) {
	mimeGlobs, err := compilePatterns(f.MIMETypes)
	if err != nil {
		return nil, err
	}
	extGlobs, err := compilePatterns(f.Extensions)
	if err != nil {
		return nil, err
	}

	out := make([]Signature, 0, len(sigs))
	for _, sig := range sigs {
		if matchesAny(mimeGlobs, sig.MIME) && matchesAny(extGlobs, sig.Extension) {
			out = append(out, sig)
		}
	}
	return out, nil
}

// Select is shorthand for Filter{MIMETypes: patterns}.Apply(All()).
func Select(patterns ...string) ([]Signature, error) {
	return Filter{MIMETypes: patterns}.Apply(All())
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// matchesAny reports whether s matches one of globs. No globs matches all.
func matchesAny(globs []glob.Glob, s string) bool {
	if len(globs) == 0 {
		return true
	}
	for _, g := range globs {
		if g.Match(s) {
			return true
		}
	}
	return false
}

// splitList splits a comma-separated config value.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

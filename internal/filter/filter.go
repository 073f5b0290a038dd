// Package filter decides which content files the SEO pass inspects.
package filter

import (
	"fmt"
	"regexp"

	"github.com/thinktandem/seocheck/pkg/seocheck"
)

// Decider is a pure path predicate built from ignoreFiles and toInspect.
// It is safe for concurrent use.
type Decider struct {
	ignore   map[string]struct{}
	patterns []*regexp.Regexp
}

// New compiles the inspection patterns of opts. An empty pattern list falls
// back to DefaultInspectPattern.
func New(opts seocheck.Options) (*Decider, error) {
	sources := []string(opts.ToInspect)
	if len(sources) == 0 {
		sources = []string{seocheck.DefaultInspectPattern}
	}

	d := &Decider{
		ignore:   make(map[string]struct{}, len(opts.IgnoreFiles)),
		patterns: make([]*regexp.Regexp, 0, len(sources)),
	}
	for _, f := range opts.IgnoreFiles {
		d.ignore[f] = struct{}{}
	}
	for _, src := range sources {
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("toInspect pattern %q: %w: %w", src, seocheck.ErrInvalidConfig, err)
		}
		d.patterns = append(d.patterns, re)
	}
	return d, nil
}

// ShouldInspect reports whether path is subject to the SEO pass.
func (d *Decider) ShouldInspect(path string) bool {
	if _, ignored := d.ignore[path]; ignored {
		return false
	}
	for _, re := range d.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

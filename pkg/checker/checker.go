package checker

import (
	"fmt"

	"github.com/thinktandem/seocheck/internal/config"
	"github.com/thinktandem/seocheck/internal/filter"
	"github.com/thinktandem/seocheck/pkg/seocheck"
)

// Observer is called after a file has been decorated and validated.
type Observer func(path string, rec seocheck.Record)

// Option configures optional Checker behavior.
type Option func(*Checker)

// WithObserver registers fn to be called for every file that passes.
func WithObserver(fn Observer) Option {
	return func(c *Checker) {
		c.observers = append(c.observers, fn)
	}
}

// Checker runs the SEO pass over a FileSet.
// Options are fixed at construction; Process may be called repeatedly but
// must not run concurrently on the same FileSet.
type Checker struct {
	opts      seocheck.Options
	decider   *filter.Decider
	logger    seocheck.Logger
	observers []Observer
}

// New creates a Checker for opts, which should already be merged over the
// defaults. Panics if logger is nil.
func New(opts seocheck.Options, logger seocheck.Logger, options ...Option) (*Checker, error) {
	if logger == nil {
		panic("logger cannot be nil")
	}

	decider, err := filter.New(opts)
	if err != nil {
		return nil, fmt.Errorf("build inspection filter: %w", err)
	}

	c := &Checker{
		opts:    opts,
		decider: decider,
		logger:  logger,
	}
	for _, o := range options {
		o(c)
	}
	return c, nil
}

// NewWithDefaults merges user over the built-in defaults and creates a
// Checker for the result. It is the entry point for callers that build their
// options in code rather than from seocheck.yaml.
func NewWithDefaults(user seocheck.Options, logger seocheck.Logger, options ...Option) (*Checker, error) {
	opts, err := config.MergeDefaults(user, config.Defaults())
	if err != nil {
		return nil, err
	}
	return New(opts, logger, options...)
}

// ShouldInspect reports whether path is subject to the pass.
func (c *Checker) ShouldInspect(path string) bool {
	return c.decider.ShouldInspect(path)
}

// Process decorates and validates every inspected file in insertion order.
// It returns the first *seocheck.ValidationError encountered, or nil.
func (c *Checker) Process(files *seocheck.FileSet) error {
	if files == nil {
		return nil
	}
	return files.Each(func(path string, rec seocheck.Record) error {
		if !c.ShouldInspect(path) {
			return nil
		}

		c.logger.Verbose("checking file: %s", path)
		if err := c.checkFile(path, rec); err != nil {
			return err
		}

		for _, fn := range c.observers {
			fn(path, rec)
		}
		return nil
	})
}

// checkFile applies the rules to one record. The order of the steps is
// significant: later steps read fields written by earlier ones.
func (c *Checker) checkFile(file string, data seocheck.Record) error {
	seo := data.Sub(seocheck.FieldSEO)

	c.applyCanonical(data, seo)
	c.applyDescription(data, seo)
	c.applyKeywords(data, seo)

	twitter := data.Sub(seocheck.FieldTwitter)
	c.applyTwitterDefaults(twitter)
	c.applyTwitterImage(data, twitter)

	c.applyTrailingSlash(seo)
	c.applyRobots(data, seo)

	if err := c.applyValues(file, data, seo); err != nil {
		return err
	}
	if err := c.checkLengths(file, data, seo); err != nil {
		return err
	}

	return c.applyOGP(file, data, seo)
}

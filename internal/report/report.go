// Package report renders the outcome of a check run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thinktandem/seocheck/internal/ui"
	"github.com/thinktandem/seocheck/pkg/seocheck"
)

// Format selects how checked records are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q (want text, json or yaml)", seocheck.ErrInvalidConfig, s)
	}
}

// Page is the SEO view of one checked record.
type Page struct {
	File    string          `json:"file" yaml:"file"`
	Title   any             `json:"title,omitempty" yaml:"title,omitempty"`
	SEO     seocheck.Record `json:"seo,omitempty" yaml:"seo,omitempty"`
	Twitter seocheck.Record `json:"twitter,omitempty" yaml:"twitter,omitempty"`
}

// Collector gathers the pages the checker passes. Its Observe method is a
// checker observer.
type Collector struct {
	pages []Page
}

// Observe records the SEO view of rec.
func (c *Collector) Observe(path string, rec seocheck.Record) {
	page := Page{File: path, Title: rec.Get(seocheck.FieldTitle)}
	if seo, ok := rec.Lookup(seocheck.FieldSEO); ok {
		page.SEO = seo
	}
	if tw, ok := rec.Lookup(seocheck.FieldTwitter); ok {
		page.Twitter = tw
	}
	c.pages = append(c.pages, page)
}

// Pages returns the collected pages in check order.
func (c *Collector) Pages() []Page {
	return c.pages
}

// Write renders pages in format. Text output is empty; use Summary instead.
func Write(w io.Writer, pages []Page, format Format) error {
	if pages == nil {
		pages = []Page{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pages)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(pages); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Summary is the one-line outcome of a run.
type Summary struct {
	Loaded    int
	Inspected int
	Failed    *seocheck.ValidationError
}

// Render formats s with theme.
func (s Summary) Render(theme ui.Theme) string {
	if s.Failed != nil {
		return fmt.Sprintf("%s %s in %s (%d of %d files checked)",
			theme.Error(ui.SymbolCross+" SEO check failed:"),
			s.Failed.Kind, s.Failed.File, s.Inspected, s.Loaded)
	}
	return fmt.Sprintf("%s %s",
		theme.Success(ui.SymbolCheck+" SEO check passed:"),
		theme.Muted(fmt.Sprintf("%d of %d files inspected", s.Inspected, s.Loaded)))
}

package checker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/thinktandem/seocheck/pkg/seocheck"
)

var reTag = regexp.MustCompile(`<[^>]+>`)

func (c *Checker) applyCanonical(data, seo seocheck.Record) {
	if seo.Truthy("canonical") {
		return
	}
	seo.Set("canonical", c.opts.CanonicalBase+"/"+toString(data.Get(seocheck.FieldPath)))
}

func (c *Checker) applyDescription(data, seo seocheck.Record) {
	source, ok := resolveSource(seo.Get("description"), seocheck.StringValue(c.opts.SEO.Description))
	if !ok {
		seo.Delete("description")
		return
	}
	if key, isKey := source.(string); isKey && data.Has(key) {
		text := reTag.ReplaceAllString(toString(data.Get(key)), "")
		seo.Set("description", truncate(text, seocheck.DescriptionMaxLength))
		return
	}
	seo.Set("description", source)
}

func (c *Checker) applyKeywords(data, seo seocheck.Record) {
	source, ok := resolveSource(seo.Get("keywords"), seocheck.StringValue(c.opts.SEO.Keywords))
	if !ok {
		seo.Delete("keywords")
		return
	}
	if key, isKey := source.(string); isKey && data.Has(key) {
		seo.Set("keywords", data.Get(key))
		return
	}
	seo.Set("keywords", source)
}

func (c *Checker) applyTwitterDefaults(twitter seocheck.Record) {
	setDefault(twitter, "siteurl", c.opts.Twitter.SiteURL)
	setDefault(twitter, "card", c.opts.Twitter.Card)
	setDefault(twitter, "site", c.opts.Twitter.Site)
}

func (c *Checker) applyTwitterImage(data, twitter seocheck.Record) {
	if img, ok := imageCandidate(data); ok {
		if !strings.Contains(img, seocheck.ImageOrigin) {
			if strings.HasPrefix(img, "/") {
				img = seocheck.ImageOrigin + img
			} else {
				img = seocheck.ImageOrigin + "/" + img
			}
		}
		twitter.Set("image", img)
		return
	}
	setDefault(twitter, "image", c.opts.Twitter.Image)
}

func (c *Checker) applyTrailingSlash(seo seocheck.Record) {
	if !c.opts.TrailingSlashEnabled() {
		return
	}
	canonical := toString(seo.Get("canonical"))
	if strings.Contains(canonical, ".html") || strings.HasSuffix(canonical, "/") {
		return
	}
	seo.Set("canonical", canonical+"/")
}

func (c *Checker) applyRobots(data, seo seocheck.Record) {
	if seo.Truthy("robots") {
		return
	}
	if data.Truthy(seocheck.FieldPrivate) {
		seo.Set("robots", seocheck.RobotsPrivate)
	} else if robots := seocheck.StringValue(c.opts.SEO.Robots); robots != "" {
		seo.Set("robots", robots)
	}
}

func (c *Checker) applyValues(file string, data, seo seocheck.Record) error {
	for _, rule := range c.opts.Values {
		container := seo
		if rule.Attribute == seocheck.FieldTitle {
			container = data
		}

		if container.Truthy(rule.Attribute) {
			continue
		}
		if rule.Required {
			return seocheck.NewMissingRequiredAttribute(file, rule.Attribute)
		}
		container.Set(rule.Attribute, rule.Default)
	}
	return nil
}

func (c *Checker) checkLengths(file string, data, seo seocheck.Record) error {
	for _, lim := range c.opts.Lengths {
		var value any
		if lim.Attribute == seocheck.FieldTitle {
			value = data.Get(seocheck.FieldTitle)
		} else {
			value = seo.Get(lim.Attribute)
		}

		length := 0
		if seocheck.Truthy(value) {
			length = seocheck.Length(value)
		}
		if lim.Max != 0 && length > lim.Max {
			return seocheck.NewAttributeTooLong(file, lim.Attribute, lim.Max, length)
		}
	}
	return nil
}

func (c *Checker) applyOGP(file string, data, seo seocheck.Record) error {
	ogp := seo.Sub(seocheck.FieldOGP)
	if !ogp.Truthy("title") && data.Get(seocheck.FieldTitle) != nil {
		ogp.Set("title", data.Get(seocheck.FieldTitle))
	}
	setDefault(ogp, "type", c.opts.OGP.DefaultType)
	setDefault(ogp, "image", c.opts.OGP.DefaultImage)

	if !ogp.Truthy("image") && !c.opts.OGP.IgnoresMissingImage() {
		return seocheck.NewMissingOgpImage(file)
	}
	return nil
}

// resolveSource picks the file's own value when truthy, else the option default.
func resolveSource(own any, fallback string) (any, bool) {
	if seocheck.Truthy(own) {
		return own, true
	}
	if fallback != "" {
		return fallback, true
	}
	return nil, false
}

// imageCandidate returns the file's preferred image: image (or image.src),
// then mainImage. Present-but-null values yield no candidate.
func imageCandidate(data seocheck.Record) (string, bool) {
	var v any
	switch {
	case data.Has(seocheck.FieldImage):
		v = data.Get(seocheck.FieldImage)
		if rec, ok := seocheck.AsRecord(v); ok {
			v = rec.Get("src")
		}
	case data.Has(seocheck.FieldMainImage):
		v = data.Get(seocheck.FieldMainImage)
	}
	if v == nil {
		return "", false
	}
	return toString(v), true
}

// setDefault stores def under key when the current value is falsy and def is
// a non-empty string.
func setDefault(r seocheck.Record, key string, def *string) {
	if r.Truthy(key) || seocheck.StringValue(def) == "" {
		return
	}
	r.Set(key, *def)
}

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

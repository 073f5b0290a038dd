package loader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/thinktandem/seocheck/pkg/seocheck"
)

// headField maps a selector in the document head to the record key its
// value is stored under. Keys under seo are stored in the nested block.
type headField struct {
	selector string
	attr     string
	key      string
	inSEO    bool
}

var headFields = []headField{
	{selector: `meta[name="description"]`, attr: "content", key: "description", inSEO: true},
	{selector: `meta[name="keywords"]`, attr: "content", key: "keywords", inSEO: true},
	{selector: `meta[name="robots"]`, attr: "content", key: "robots", inSEO: true},
	{selector: `link[rel="canonical"]`, attr: "href", key: "canonical", inSEO: true},
	{selector: `meta[property="og:image"]`, attr: "content", key: seocheck.FieldImage},
}

// parseHTML reads the SEO-relevant tags of an HTML document. An og:image tag
// fills both image and seo.ogp.image. The raw markup is kept under contents.
func parseHTML(content []byte) (seocheck.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	rec := seocheck.Record{seocheck.FieldContents: string(content)}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		rec.Set(seocheck.FieldTitle, title)
	}

	seo := seocheck.Record{}
	for _, f := range headFields {
		v, ok := doc.Find(f.selector).First().Attr(f.attr)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			continue
		}
		if f.inSEO {
			seo.Set(f.key, v)
		} else {
			rec.Set(f.key, v)
		}
	}
	if img, ok := rec.String(seocheck.FieldImage); ok {
		seo.Sub(seocheck.FieldOGP).Set("image", img)
	}
	if len(seo) > 0 {
		rec.Set(seocheck.FieldSEO, seo)
	}
	return rec, nil
}

// Package checker implements the SEO metadata pass run over a site's content
// files during a build.
//
// # Overview
//
// For every file accepted by the inspection filter, the checker fills in
// missing SEO metadata and then validates the result:
//
//	seo.canonical      canonicalBase + "/" + path, with optional trailing slash
//	seo.description    literal default, or a referenced field stripped of tags
//	seo.keywords       literal default, or a referenced field
//	seo.robots         explicit, "noindex, nofollow" when private, or the default
//	twitter.*          card defaults and an absolute image URL
//	seo.ogp.*          title, type and image
//
// Values a file already carries are never overwritten, so running the pass
// twice over the same records changes nothing the second time.
//
// # Failure
//
// Validation stops at the first violation, in file order and then in rule
// order, and Process returns a single *seocheck.ValidationError. Files
// checked before the failing one keep their changes.
//
// # Field references
//
// The description and keywords sources are looked up as field names on the
// record. A literal default that happens to equal a field name on some file
// is read from that field instead:
//
//	seo:
//	  description: summary   # reads the file's "summary" field when present
package checker

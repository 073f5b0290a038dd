// Package seocheck defines the public types shared by the seocheck packages:
// the open per-file metadata Record, the insertion-ordered FileSet the checker
// walks, the Options that drive defaulting and validation, and the errors a
// failed pass reports.
//
// A typical build step builds a checker from its own options, merged over the
// built-in defaults, and runs it once over the whole file set:
//
//	c, err := checker.NewWithDefaults(seocheck.Options{
//	    CanonicalBase: "https://example.com",
//	    OGP:           seocheck.OGPOptions{DefaultImage: seocheck.String("/images/og.png")},
//	}, logger)
//	if err != nil {
//	    return err
//	}
//	if err := c.Process(files); err != nil {
//	    // err is a *seocheck.ValidationError naming the first failing file
//	    return err
//	}
package seocheck

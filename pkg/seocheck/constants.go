package seocheck

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // All inspected files passed
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitValidationFailed = 13 // A file failed SEO validation
)

const (
	// ConfigFileName is the project configuration file looked up in the project root.
	ConfigFileName = "seocheck.yaml"

	// DescriptionMaxLength is the number of characters kept when a description
	// is derived from another field of the record.
	DescriptionMaxLength = 160

	// ImageOrigin is prepended to relative Twitter card images.
	ImageOrigin = "https://thinktandem.io"

	// RobotsPrivate is assigned to pages marked private that carry no explicit robots directive.
	RobotsPrivate = "noindex, nofollow"

	// DefaultInspectPattern matches markdown and HTML content paths.
	DefaultInspectPattern = `.md$|.markdown$|.html?$`
)

// Field names read from or written to a file record.
const (
	FieldTitle     = "title"
	FieldPath      = "path"
	FieldPrivate   = "private"
	FieldImage     = "image"
	FieldMainImage = "mainImage"
	FieldContents  = "contents"
	FieldSEO       = "seo"
	FieldTwitter   = "twitter"
	FieldOGP       = "ogp"
)

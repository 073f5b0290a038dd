package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thinktandem/seocheck/pkg/seocheck"
)

// ErrConfigExists is returned by WriteTemplate when the project already has a
// config file.
var ErrConfigExists = errors.New("config file already exists")

// Template is the commented config written by `seocheck init`. Every value
// matches Defaults.
const Template = `# seocheck configuration. Keys left out fall back to the built-in defaults.

# Paths, relative to the content directory, that are never checked.
ignoreFiles: []

# Regular expressions selecting the files to check.
toInspect:
  - '.md$|.markdown$|.html?$'

# Append "/" to canonical URLs that do not point at an .html file.
trailingSlash: true

# Maximum lengths in characters, checked in this order. 0 disables a limit.
lengths:
  title: 60
  description: 160

# Prefix of every derived canonical URL. SEOCHECK_CANONICAL_BASE overrides it.
canonicalBase: ""

seo:
  # A front matter field to derive the description from, or a literal default.
  # false leaves it unset.
  description: false
  # A front matter field holding the keywords, or a literal default.
  keywords: false
  # "" turns the robots default off.
  robots: "index, follow"

ogp:
  defaultType: website
  # false means no default image; pages without one then fail the check.
  defaultImage: false
  ignoreMissingImage: false

twitter:
  siteurl: https://thinktandem.io
  card: summary
  site: "@ThinkTandem"
  image: false

# Attributes that must be set (true) or that receive a literal default.
#   values:
#     description: true
#     author: Tandem
values: {}

content:
  # Doublestar globs skipped while loading content.
  exclude:
    - "**/node_modules/**"
    - "**/.git/**"
`

// TemplateValues are the project-specific answers filled into Template.
// Empty fields keep the template's default.
type TemplateValues struct {
	CanonicalBase string
	DefaultImage  string
	TwitterSite   string
}

// RenderTemplate returns Template with v filled in.
func RenderTemplate(v TemplateValues) string {
	var pairs []string
	if v.CanonicalBase != "" {
		pairs = append(pairs, `canonicalBase: ""`, "canonicalBase: "+strconv.Quote(v.CanonicalBase))
	}
	if v.DefaultImage != "" {
		pairs = append(pairs, "  defaultImage: false", "  defaultImage: "+strconv.Quote(v.DefaultImage))
	}
	if v.TwitterSite != "" {
		pairs = append(pairs, `  site: "@ThinkTandem"`, "  site: "+strconv.Quote(v.TwitterSite))
	}
	if len(pairs) == 0 {
		return Template
	}
	return strings.NewReplacer(pairs...).Replace(Template)
}

// WriteTemplate writes the rendered template to dir/seocheck.yaml, creating
// dir if needed. It never overwrites an existing file.
func WriteTemplate(dir string, v TemplateValues) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, seocheck.ConfigFileName)
	f, err := os.OpenFile(configPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%w: %s", ErrConfigExists, configPath)
		}
		return "", err
	}

	if _, err := f.WriteString(RenderTemplate(v)); err != nil {
		f.Close()
		return "", err
	}
	return configPath, f.Close()
}

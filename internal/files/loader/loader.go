package loader

import (
	"fmt"
	"path"
	"strings"

	"github.com/thinktandem/seocheck/internal/files/filesystem"
	"github.com/thinktandem/seocheck/internal/files/scanner"
	"github.com/thinktandem/seocheck/internal/frontmatter"
	"github.com/thinktandem/seocheck/pkg/seocheck"
)

// Loader builds records from content files.
type Loader struct {
	scanner *scanner.Scanner
	logger  seocheck.Logger
}

// New creates a Loader reading through fsProvider and honoring
// opts.Content.Exclude. Panics if fsProvider or logger is nil.
func New(fsProvider filesystem.FileSystemProvider, opts seocheck.Options, logger seocheck.Logger) (*Loader, error) {
	if logger == nil {
		panic("logger cannot be nil")
	}
	sc, err := scanner.NewScanner(fsProvider, opts.Content.Exclude)
	if err != nil {
		return nil, err
	}
	return &Loader{scanner: sc, logger: logger}, nil
}

// Load reads every file under root into a FileSet keyed by slash-separated
// relative path.
func (l *Loader) Load(root string) (*seocheck.FileSet, error) {
	result, err := l.scanner.ScanDirectory(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if result.Excluded > 0 {
		l.logger.Verbose("excluded %d paths under %s", result.Excluded, root)
	}

	files := seocheck.NewFileSet()
	for _, entry := range result.Entries {
		rec, err := l.record(entry)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Path, err)
		}
		if !rec.Has(seocheck.FieldPath) {
			rec.Set(seocheck.FieldPath, PagePath(entry.Path))
		}
		files.Add(entry.Path, rec)
	}

	l.logger.Verbose("loaded %d files from %s", files.Len(), root)
	return files, nil
}

func (l *Loader) record(entry scanner.Entry) (seocheck.Record, error) {
	switch entry.Ext {
	case ".md", ".markdown":
		rec, body, err := frontmatter.Parse(entry.Content)
		if err != nil {
			return nil, err
		}
		rec.Set(seocheck.FieldContents, body)
		return rec, nil
	case ".html", ".htm":
		return parseHTML(entry.Content)
	default:
		return seocheck.Record{}, nil
	}
}

// PagePath returns the URL path a file is published under, relative to the
// site root. Markdown drops its extension and a trailing "index" segment;
// every other file keeps its relative path.
//
//	blog/post.md   -> blog/post
//	blog/index.md  -> blog
//	index.md       -> ""
//	about.html     -> about.html
func PagePath(rel string) string {
	ext := strings.ToLower(path.Ext(rel))
	if ext != ".md" && ext != ".markdown" {
		return rel
	}

	p := strings.TrimSuffix(rel, path.Ext(rel))
	switch {
	case p == "index":
		return ""
	case strings.HasSuffix(p, "/index"):
		return strings.TrimSuffix(p, "/index")
	default:
		return p
	}
}

package scanner

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/thinktandem/seocheck/internal/files/filesystem"
	"github.com/thinktandem/seocheck/pkg/seocheck"
)

// Entry is a content file found by the scanner.
type Entry struct {
	// Path is slash-separated and relative to the scanned root.
	Path string

	// Ext is the lower-case extension including the dot, or "".
	Ext string

	Content []byte
}

// Result holds a scan's entries in lexical path order.
type Result struct {
	Entries  []Entry
	Excluded int
}

// Scanner discovers content files. It is safe for concurrent use as long as
// the provider is.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	exclude    []string
}

// NewScanner creates a scanner over fsProvider that skips paths matching any
// of the exclude globs. Returns an error wrapping seocheck.ErrInvalidConfig
// for a malformed glob. Panics if fsProvider is nil.
func NewScanner(fsProvider filesystem.FileSystemProvider, exclude []string) (*Scanner, error) {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: bad exclude pattern %q", seocheck.ErrInvalidConfig, pattern)
		}
	}
	return &Scanner{
		fsProvider: fsProvider,
		exclude:    append([]string(nil), exclude...),
	}, nil
}

// ScanDirectory walks root and reads every file that is not excluded.
func (s *Scanner) ScanDirectory(root string) (Result, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open directory: %w", err)
	}

	var result Result
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		rel := file.RelativePath()
		if s.Excluded(rel) {
			result.Excluded++
			if file.Info().IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if file.Info().IsDir() {
			return nil
		}

		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rel, err)
		}
		result.Entries = append(result.Entries, Entry{
			Path:    rel,
			Ext:     strings.ToLower(path.Ext(rel)),
			Content: content,
		})
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	sort.Slice(result.Entries, func(i, j int) bool {
		return result.Entries[i].Path < result.Entries[j].Path
	})
	return result, nil
}

// Excluded reports whether the slash-separated relative path matches an
// exclude glob.
func (s *Scanner) Excluded(rel string) bool {
	for _, pattern := range s.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

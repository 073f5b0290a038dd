package filesystem

import (
	"errors"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// ErrNotDirectory is returned by Open when the path names a regular file.
var ErrNotDirectory = errors.New("not a directory")

// File is an entry met while walking a content root.
type File interface {
	// Path returns the entry's full path on its filesystem.
	Path() string

	// RelativePath returns the slash-separated path relative to the walked root.
	RelativePath() string

	// Info returns file metadata.
	Info() FileInfo

	// ReadContent returns the file's content.
	ReadContent() ([]byte, error)
}

// Directory is a content root that can be traversed.
type Directory interface {
	// Path returns the root's full path.
	Path() string

	// Walk visits every descendant of the root, directories before their
	// contents. Returning fs.SkipDir for a directory prunes it; any other
	// error stops the walk and is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider opens content roots and reads single files.
type FileSystemProvider interface {
	// Open opens the directory at path.
	Open(path string) (Directory, error)

	// ReadFile reads the file at path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for path.
	Stat(path string) (FileInfo, error)
}

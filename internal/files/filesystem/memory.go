package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type memoryFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

func (f *memoryFileInfo) Mode() fs.FileMode {
	if f.isDir {
		return 0755 | fs.ModeDir
	}
	return 0644
}

type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    *memoryFileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return f.content, nil
}

type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)

	var pruned []string
	for _, entry := range entries {
		if underAny(entry.absPath, pruned) {
			continue
		}
		err := fn(entry, nil)
		if errors.Is(err, fs.SkipDir) {
			if entry.info.isDir {
				pruned = append(pruned, entry.absPath)
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func underAny(p string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(p, dir+"/") {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider over an in-memory tree.
// Paths use forward slashes. It is not safe for concurrent mutation.
type MemoryFileSystem struct {
	root  string
	files map[string][]byte
	now   time.Time
}

// NewMemoryFileSystem creates an empty tree rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	return &MemoryFileSystem{
		root:  path.Clean(filepath.ToSlash(root)),
		files: make(map[string][]byte),
		now:   time.Now(),
	}
}

// AddFile stores content at p, which is relative to the root unless absolute.
// Parent directories exist implicitly.
func (mfs *MemoryFileSystem) AddFile(p string, content string) {
	mfs.files[mfs.abs(p)] = []byte(content)
}

func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

func (mfs *MemoryFileSystem) isDir(abs string) bool {
	for p := range mfs.files {
		if strings.HasPrefix(p, abs+"/") {
			return true
		}
	}
	return abs == mfs.root
}

// entriesUnder lists files and implied directories below dir, sorted by path.
func (mfs *MemoryFileSystem) entriesUnder(dir string) []*memoryFile {
	dirs := make(map[string]bool)
	var out []*memoryFile

	for p, content := range mfs.files {
		if !strings.HasPrefix(p, dir+"/") {
			continue
		}
		rel := strings.TrimPrefix(p, dir+"/")
		out = append(out, &memoryFile{
			absPath: p,
			relPath: rel,
			content: content,
			info:    &memoryFileInfo{name: path.Base(p), size: int64(len(content)), modTime: mfs.now},
		})

		for parent := path.Dir(rel); parent != "."; parent = path.Dir(parent) {
			dirs[parent] = true
		}
	}

	for rel := range dirs {
		out = append(out, &memoryFile{
			absPath: dir + "/" + rel,
			relPath: rel,
			info:    &memoryFileInfo{name: path.Base(rel), modTime: mfs.now, isDir: true},
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].absPath < out[j].absPath
	})
	return out
}

func (mfs *MemoryFileSystem) Open(p string) (Directory, error) {
	abs := mfs.abs(p)
	if _, isFile := mfs.files[abs]; isFile {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, p)
	}
	if !mfs.isDir(abs) {
		return nil, fmt.Errorf("directory not found: %s", p)
	}
	return &memoryDirectory{absPath: abs, fs: mfs}, nil
}

func (mfs *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	content, ok := mfs.files[mfs.abs(p)]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", p)
	}
	return content, nil
}

func (mfs *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	abs := mfs.abs(p)
	if content, ok := mfs.files[abs]; ok {
		return &memoryFileInfo{name: path.Base(abs), size: int64(len(content)), modTime: mfs.now}, nil
	}
	if mfs.isDir(abs) {
		return &memoryFileInfo{name: path.Base(abs), modTime: mfs.now, isDir: true}, nil
	}
	return nil, fmt.Errorf("path not found: %s", p)
}

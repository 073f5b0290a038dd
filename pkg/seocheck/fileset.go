package seocheck

// FileSet is an insertion-ordered mapping from file path to Record.
// Iteration order is the order in which paths were first added; the checker
// relies on it to report the same first failure on every run.
// FileSet is not safe for concurrent use.
type FileSet struct {
	paths   []string
	records map[string]Record
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{records: make(map[string]Record)}
}

// Add stores r under path. Re-adding a path replaces its record but keeps
// its original position. A nil record is stored as an empty one.
func (s *FileSet) Add(path string, r Record) {
	if r == nil {
		r = Record{}
	}
	if _, exists := s.records[path]; !exists {
		s.paths = append(s.paths, path)
	}
	s.records[path] = r
}

// Get returns the record stored under path.
func (s *FileSet) Get(path string) (Record, bool) {
	r, ok := s.records[path]
	return r, ok
}

// Paths returns the file paths in insertion order.
func (s *FileSet) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len returns the number of files in the set.
func (s *FileSet) Len() int {
	return len(s.paths)
}

// Each calls fn for every file in insertion order and stops at the first error.
func (s *FileSet) Each(fn func(path string, r Record) error) error {
	for _, p := range s.paths {
		if err := fn(p, s.records[p]); err != nil {
			return err
		}
	}
	return nil
}

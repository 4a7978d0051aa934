package sweep

import (
	"sort"
	"sync"
)

// DirSet accumulates the destination directories a run touches. Safe
// for concurrent use by pipeline workers; the sweep phase drains it as
// a deduplicated, sorted list.
type DirSet struct {
	mu   sync.Mutex
	dirs map[string]struct{}
}

// NewDirSet creates an empty set.
func NewDirSet() *DirSet {
	return &DirSet{dirs: make(map[string]struct{})}
}

// Add records a directory. Duplicates collapse.
func (s *DirSet) Add(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirs[dir] = struct{}{}
}

// Len reports how many distinct directories were recorded.
func (s *DirSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dirs)
}

// Sorted returns the recorded directories in lexical order.
func (s *DirSet) Sorted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.dirs))
	for dir := range s.dirs {
		out = append(out, dir)
	}
	sort.Strings(out)
	return out
}

package sweep

import (
	"fmt"
	"sync"
	"testing"
)

func TestDirSet(t *testing.T) {
	s := NewDirSet()

	s.Add("/logs/b/Archive")
	s.Add("/logs/a/Archive")
	s.Add("/logs/b/Archive")
	s.Add("/logs/c/Archive")

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	want := []string{"/logs/a/Archive", "/logs/b/Archive", "/logs/c/Archive"}
	got := s.Sorted()
	if len(got) != len(want) {
		t.Fatalf("Sorted() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sorted()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDirSet_Empty(t *testing.T) {
	s := NewDirSet()

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if got := s.Sorted(); len(got) != 0 {
		t.Errorf("Sorted() = %v, want empty", got)
	}
}

func TestDirSet_ConcurrentAdd(t *testing.T) {
	s := NewDirSet()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Add(fmt.Sprintf("/logs/%d/Archive", i%10))
			}
		}(w)
	}
	wg.Wait()

	if s.Len() != 10 {
		t.Errorf("Len() = %d, want 10", s.Len())
	}
}

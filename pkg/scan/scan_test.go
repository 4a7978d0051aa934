package scan

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testExtensions = []string{".log", ".txt", ".out", ".err", ".trace"}

func testScanner() *Scanner {
	return NewScanner(testExtensions, "Archive", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// writeFileAged creates a file under dir with the given age relative to now.
func writeFileAged(t *testing.T, dir, name string, now time.Time, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte("2026-01-02 12:00:00 entry\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	mt := now.Add(-age)
	if err := os.Chtimes(path, mt, mt); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}
	return path
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	cutoff := CutoffFor(now, 30)

	old := 45 * 24 * time.Hour
	fresh := 5 * 24 * time.Hour

	writeFileAged(t, root, "app.log", now, old)
	writeFileAged(t, root, "sub/service.txt", now, old)
	writeFileAged(t, root, "sub/deep/job.out", now, old)
	writeFileAged(t, root, "recent.log", now, fresh)
	writeFileAged(t, root, "notes.md", now, old)
	writeFileAged(t, root, "Archive/already.log", now, old)

	res, err := testScanner().Discover(root, cutoff)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(res.Candidates) != 3 {
		t.Fatalf("Discover() returned %d candidates, want 3", len(res.Candidates))
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}
	if res.WalkErrors != 0 {
		t.Errorf("WalkErrors = %d, want 0", res.WalkErrors)
	}

	for _, c := range res.Candidates {
		if c.Size <= 0 {
			t.Errorf("candidate %s has Size = %d, want > 0", c.Path, c.Size)
		}
		if c.ModTime.After(cutoff) {
			t.Errorf("candidate %s modified %v, after cutoff %v", c.Path, c.ModTime, cutoff)
		}
	}
}

func TestDiscover_WalkOrder(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	age := 60 * 24 * time.Hour

	writeFileAged(t, root, "b.log", now, age)
	writeFileAged(t, root, "a.log", now, age)
	writeFileAged(t, root, "c.log", now, age)

	res, err := testScanner().Discover(root, CutoffFor(now, 30))
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"a.log", "b.log", "c.log"}
	if len(res.Candidates) != len(want) {
		t.Fatalf("Discover() returned %d candidates, want %d", len(res.Candidates), len(want))
	}
	for i, c := range res.Candidates {
		if c.Name != want[i] {
			t.Errorf("candidate[%d] = %s, want %s", i, c.Name, want[i])
		}
	}
}

func TestDiscover_ExactCutoffNotSelected(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	cutoff := CutoffFor(now, 30)

	// Exactly at the threshold: retained. One second past: expired.
	atCutoff := filepath.Join(root, "boundary.log")
	if err := os.WriteFile(atCutoff, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.Chtimes(atCutoff, cutoff, cutoff); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	past := filepath.Join(root, "expired.log")
	if err := os.WriteFile(past, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	justPast := cutoff.Add(-time.Second)
	if err := os.Chtimes(past, justPast, justPast); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	res, err := testScanner().Discover(root, cutoff)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(res.Candidates) != 1 {
		t.Fatalf("Discover() returned %d candidates, want 1", len(res.Candidates))
	}
	if res.Candidates[0].Name != "expired.log" {
		t.Errorf("selected %s, want expired.log", res.Candidates[0].Name)
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1 for the boundary file", res.Skipped)
	}
}

func TestDiscover_CaseInsensitiveExtensions(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	age := 60 * 24 * time.Hour

	writeFileAged(t, root, "UPPER.LOG", now, age)
	writeFileAged(t, root, "Mixed.Txt", now, age)
	writeFileAged(t, root, "trace.TRACE", now, age)

	res, err := testScanner().Discover(root, CutoffFor(now, 30))
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(res.Candidates) != 3 {
		t.Errorf("Discover() returned %d candidates, want 3", len(res.Candidates))
	}
}

func TestDiscover_ZeroByteFile(t *testing.T) {
	root := t.TempDir()
	now := time.Now()

	path := filepath.Join(root, "empty.log")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	mt := now.Add(-60 * 24 * time.Hour)
	if err := os.Chtimes(path, mt, mt); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	res, err := testScanner().Discover(root, CutoffFor(now, 30))
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(res.Candidates) != 1 {
		t.Fatalf("Discover() returned %d candidates, want 1", len(res.Candidates))
	}
	if res.Candidates[0].Size != 0 {
		t.Errorf("Size = %d, want 0", res.Candidates[0].Size)
	}
}

func TestDiscover_NestedArchiveDirExcluded(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	age := 60 * 24 * time.Hour

	writeFileAged(t, root, "svc/app.log", now, age)
	writeFileAged(t, root, "svc/Archive/app.log", now, age)
	writeFileAged(t, root, "svc/Archive/deep/more.log", now, age)

	res, err := testScanner().Discover(root, CutoffFor(now, 30))
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(res.Candidates) != 1 {
		t.Fatalf("Discover() returned %d candidates, want 1", len(res.Candidates))
	}
	if res.Candidates[0].Name != "app.log" || filepath.Base(filepath.Dir(res.Candidates[0].Path)) != "svc" {
		t.Errorf("unexpected candidate %s", res.Candidates[0].Path)
	}
}

func TestDiscover_CustomArchiveDirName(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	age := 60 * 24 * time.Hour

	writeFileAged(t, root, "Archived/app.log", now, age)
	writeFileAged(t, root, "Archive/app.log", now, age)

	s := NewScanner(testExtensions, "Archived", slog.New(slog.NewTextHandler(io.Discard, nil)))
	res, err := s.Discover(root, CutoffFor(now, 30))
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	// Only "Archived" is excluded under this configuration; the literal
	// "Archive" directory is an ordinary directory.
	if len(res.Candidates) != 1 {
		t.Fatalf("Discover() returned %d candidates, want 1", len(res.Candidates))
	}
	if filepath.Base(filepath.Dir(res.Candidates[0].Path)) != "Archive" {
		t.Errorf("unexpected candidate %s", res.Candidates[0].Path)
	}
}

func TestDiscover_RootNamedArchive(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "Archive")
	now := time.Now()

	writeFileAged(t, root, "app.log", now, 60*24*time.Hour)

	res, err := testScanner().Discover(root, CutoffFor(now, 30))
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(res.Candidates) != 0 {
		t.Errorf("Discover() returned %d candidates, want 0 when root is the archive directory", len(res.Candidates))
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := testScanner().Discover(filepath.Join(t.TempDir(), "absent"), time.Now())
	if err == nil {
		t.Error("Discover() should fail for a missing root")
	}
}

func TestCutoffFor(t *testing.T) {
	now := time.Date(2026, 2, 15, 3, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int
		want time.Time
	}{
		{"thirty days", 30, time.Date(2026, 1, 16, 3, 0, 0, 0, time.UTC)},
		{"ninety days", 90, time.Date(2025, 11, 17, 3, 0, 0, 0, time.UTC)},
		{"zero days", 0, now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CutoffFor(now, tt.days); !got.Equal(tt.want) {
				t.Errorf("CutoffFor(%d) = %v, want %v", tt.days, got, tt.want)
			}
		})
	}
}

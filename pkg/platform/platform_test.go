package platform

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func writeTestFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := f.Write(bytes.Repeat([]byte("logsweep"), size/8+1)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	// Sync so block accounting is settled before we measure.
	if err := f.Sync(); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return path
}

func TestOnDiskSize(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "app.log", 128*1024)

	size, err := OnDiskSize(path)
	if err != nil {
		t.Fatalf("OnDiskSize() error = %v", err)
	}
	if size <= 0 {
		t.Errorf("OnDiskSize() = %d, want > 0", size)
	}
}

func TestOnDiskSize_MissingFile(t *testing.T) {
	_, err := OnDiskSize(filepath.Join(t.TempDir(), "missing.log"))
	if err == nil {
		t.Error("OnDiskSize() should fail for a missing file")
	}
}

func TestFreeSpace(t *testing.T) {
	free, total, err := FreeSpace(t.TempDir())
	if errors.Is(err, ErrUnsupported) {
		t.Skipf("free space not obtainable on %s", runtime.GOOS)
	}
	if err != nil {
		t.Fatalf("FreeSpace() error = %v", err)
	}
	if total == 0 {
		t.Error("FreeSpace() total = 0, want > 0")
	}
	if free > total {
		t.Errorf("FreeSpace() free = %d exceeds total = %d", free, total)
	}
}

func TestCaptureTimes(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "app.log", 64)

	want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(path, want, want); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	times, err := CaptureTimes(path)
	if err != nil {
		t.Fatalf("CaptureTimes() error = %v", err)
	}
	if !times.ModTime.Truncate(time.Second).Equal(want) {
		t.Errorf("ModTime = %v, want %v", times.ModTime, want)
	}
}

func TestRestoreTimes(t *testing.T) {
	dir := t.TempDir()
	source := writeTestFile(t, dir, "app.log", 64)
	archive := writeTestFile(t, dir, "app.zip", 64)

	old := time.Date(2025, 3, 15, 8, 30, 0, 0, time.UTC)
	if err := os.Chtimes(source, old, old); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	times, err := CaptureTimes(source)
	if err != nil {
		t.Fatalf("CaptureTimes() error = %v", err)
	}
	if err := RestoreTimes(archive, times); err != nil {
		t.Fatalf("RestoreTimes() error = %v", err)
	}

	info, err := os.Stat(archive)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.ModTime().Truncate(time.Second).Equal(old) {
		t.Errorf("archive ModTime = %v, want %v", info.ModTime(), old)
	}
}

func TestNewReclaimer_Probe(t *testing.T) {
	res := NewReclaimer().Probe()

	if res.Reason == "" {
		t.Error("Probe() Reason should not be empty")
	}
	if runtime.GOOS != "windows" && res.Supported {
		t.Errorf("Probe() Supported = true on %s, want false", runtime.GOOS)
	}
}

func TestReclaim_UncompressedFile(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "app.log", 64)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	size, decompressed, err := NewReclaimer().Reclaim(path)
	if err != nil {
		t.Fatalf("Reclaim() error = %v", err)
	}
	if decompressed {
		t.Error("Reclaim() decompressed = true for an uncompressed file")
	}
	if size != info.Size() {
		t.Errorf("Reclaim() size = %d, want %d", size, info.Size())
	}
}

func TestReclaim_MissingFile(t *testing.T) {
	_, _, err := NewReclaimer().Reclaim(filepath.Join(t.TempDir(), "missing.log"))
	if err == nil {
		t.Error("Reclaim() should fail for a missing file")
	}
}

func TestIsCompressed_RegularFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("temp volume may carry the compression attribute")
	}

	path := writeTestFile(t, t.TempDir(), "app.log", 64)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if IsCompressed(info) {
		t.Error("IsCompressed() = true for a regular file")
	}
}

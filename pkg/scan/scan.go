package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/mchris2/logsweep/pkg/platform"
)

// Candidate is a file selected for archival. Immutable once read; the
// pipeline never mutates source metadata except by decompressing or
// deleting the underlying file.
type Candidate struct {
	// Path is the absolute or root-relative path as produced by the walk.
	Path string
	// Name is the base name including extension.
	Name string
	// Size is the logical size in bytes.
	Size int64
	// OnDiskSize is the allocated size, which differs from Size under
	// filesystem compression.
	OnDiskSize int64
	// ModTime is the last-modified timestamp.
	ModTime time.Time
	// Compressed reports whether the file carries a filesystem
	// compression attribute.
	Compressed bool
}

// Result is the outcome of one discovery pass.
type Result struct {
	// Candidates lists eligible files in walk order.
	Candidates []Candidate
	// Skipped counts recognized-extension files examined but newer than
	// the cutoff.
	Skipped int
	// WalkErrors counts unreadable entries below the root, which are
	// logged and skipped rather than aborting the walk.
	WalkErrors int
}

// Scanner walks a source tree for archival candidates.
type Scanner struct {
	extensions []string
	archiveDir string
	log        *slog.Logger
}

// NewScanner creates a scanner recognizing the given extensions (each
// with its leading dot) and excluding any directory named exactly
// archiveDirName. A nil logger falls back to the process default.
func NewScanner(extensions []string, archiveDirName string, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default().With("component", "scan")
	}
	return &Scanner{
		extensions: extensions,
		archiveDir: archiveDirName,
		log:        log,
	}
}

// CutoffFor returns the moment separating retained from expired files:
// anything modified strictly before it has aged out of the window. A
// file modified exactly at the cutoff is retained.
func CutoffFor(now time.Time, retentionDays int) time.Time {
	return now.AddDate(0, 0, -retentionDays)
}

// Discover walks root and returns every eligible file. Unreadable
// entries below the root are logged and counted; failure to read the
// root itself aborts discovery with no partial results, since an empty
// walk is indistinguishable from an empty tree.
func (s *Scanner) Discover(root string, cutoff time.Time) (Result, error) {
	var res Result

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("read source root %q: %w", root, err)
			}
			s.log.Warn("skipping unreadable entry", "path", path, "error", err)
			res.WalkErrors++
			return nil
		}

		if d.IsDir() {
			if d.Name() == s.archiveDir {
				return fs.SkipDir
			}
			return nil
		}

		if !s.matchesExtension(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			s.log.Warn("skipping unreadable file", "path", path, "error", err)
			res.WalkErrors++
			return nil
		}

		if !info.ModTime().Before(cutoff) {
			res.Skipped++
			return nil
		}

		onDisk, err := platform.OnDiskSizeInfo(path, info)
		if err != nil {
			onDisk = info.Size()
		}

		res.Candidates = append(res.Candidates, Candidate{
			Path:       path,
			Name:       d.Name(),
			Size:       info.Size(),
			OnDiskSize: onDisk,
			ModTime:    info.ModTime(),
			Compressed: platform.IsCompressed(info),
		})
		return nil
	})
	if walkErr != nil {
		return Result{}, walkErr
	}
	return res, nil
}

func (s *Scanner) matchesExtension(name string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	for _, want := range s.extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

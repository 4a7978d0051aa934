package sweep

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// PruneResult summarizes one sweep over archive directories.
type PruneResult struct {
	// Deleted counts archives removed.
	Deleted int
	// Bytes is the total size of removed archives.
	Bytes int64
	// Failed counts archives that could not be removed.
	Failed int
}

// Pruner deletes expired archives. Expiry uses the same strict rule as
// source discovery: an archive modified exactly at the cutoff is kept.
type Pruner struct {
	log *slog.Logger

	// DryRun reports expired archives without deleting them.
	DryRun bool
}

// NewPruner creates a pruner. A nil logger falls back to the process
// default.
func NewPruner(log *slog.Logger) *Pruner {
	if log == nil {
		log = slog.Default().With("component", "sweep")
	}
	return &Pruner{log: log}
}

// Prune removes .zip files older than cutoff from the immediate
// contents of each directory. Subdirectories are not descended into;
// each archive directory is swept on its own. Unreadable directories
// and failed deletions are warnings, never fatal: expired archives left
// behind are picked up by the next run.
func (p *Pruner) Prune(dirs []string, cutoff time.Time) PruneResult {
	var res PruneResult

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			p.log.Warn("cannot read archive directory", "dir", dir, "error", err)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !isArchiveName(entry.Name()) {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			info, err := entry.Info()
			if err != nil {
				p.log.Warn("cannot stat archive", "path", path, "error", err)
				res.Failed++
				continue
			}
			if !info.ModTime().Before(cutoff) {
				continue
			}

			if p.DryRun {
				res.Deleted++
				res.Bytes += info.Size()
				p.log.Info("would delete expired archive",
					"path", path,
					"age_days", int(time.Since(info.ModTime()).Hours()/24),
					"bytes", info.Size(),
				)
				continue
			}

			if err := os.Remove(path); err != nil {
				p.log.Warn("cannot delete expired archive", "path", path, "error", err)
				res.Failed++
				continue
			}

			res.Deleted++
			res.Bytes += info.Size()
			p.log.Info("deleted expired archive",
				"path", path,
				"age_days", int(time.Since(info.ModTime()).Hours()/24),
				"bytes", info.Size(),
			)
		}
	}

	return res
}

// DiscoverArchiveDirs returns the directories eligible for a standalone
// sweep, sorted. With a destination root every directory beneath it is
// archive space; otherwise the source tree is walked for directories
// named archiveDirName.
func (p *Pruner) DiscoverArchiveDirs(sourceRoot, destRoot, archiveDirName string) ([]string, error) {
	var dirs []string

	root := destRoot
	wantAll := true
	if destRoot == "" {
		root = sourceRoot
		wantAll = false
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			p.log.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if wantAll || d.Name() == archiveDirName {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(dirs)
	return dirs, nil
}

func isArchiveName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".zip")
}

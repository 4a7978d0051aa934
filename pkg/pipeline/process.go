package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mchris2/logsweep/pkg/archive"
	"github.com/mchris2/logsweep/pkg/platform"
	"github.com/mchris2/logsweep/pkg/scan"
	"github.com/mchris2/logsweep/pkg/sweep"
)

// archiveClaims tracks the destination archive paths produced during
// one run. Two sources can share a stem (app.log and app.txt both
// resolve to app.zip), and without a claim the second write would
// silently replace the first file's archive after its original is
// already gone. Safe for concurrent use by pool workers.
type archiveClaims struct {
	mu    sync.Mutex
	paths map[string]struct{}
}

func newArchiveClaims() *archiveClaims {
	return &archiveClaims{paths: make(map[string]struct{})}
}

// claim reserves path for the caller. It returns false when another
// file already produced an archive at that path this run.
func (a *archiveClaims) claim(path string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, taken := a.paths[path]; taken {
		return false
	}
	a.paths[path] = struct{}{}
	return true
}

// process archives every candidate. Sequential below two workers; a
// bounded pool otherwise. A canceled context stops dispatching new
// files while in-flight files finish, so the report still reflects
// everything that actually happened.
func (r *Runner) process(ctx context.Context, candidates []scan.Candidate, stats *RunStats, touched *sweep.DirSet, log *slog.Logger) {
	workers := r.cfg.Pipeline.Workers
	claims := newArchiveClaims()

	r.progress.Start(int64(len(candidates)))
	defer r.progress.Finish()
	var done atomic.Int64

	if workers <= 1 || len(candidates) <= 1 {
		for i, c := range candidates {
			if ctx.Err() != nil {
				log.Warn("run canceled, stopping dispatch", "remaining", len(candidates)-i)
				return
			}
			r.processOne(c, stats, touched, claims, log)
			r.progress.Update(done.Add(1))
		}
		return
	}

	jobs := make(chan scan.Candidate)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				r.processOne(c, stats, touched, claims, log)
				r.progress.Update(done.Add(1))
			}
		}()
	}

dispatch:
	for i, c := range candidates {
		select {
		case <-ctx.Done():
			log.Warn("run canceled, stopping dispatch", "remaining", len(candidates)-i)
			break dispatch
		case jobs <- c:
		}
	}
	close(jobs)
	wg.Wait()
}

// processOne is the per-file operation: resolve and claim the
// destination, optionally reclaim filesystem compression, archive,
// delete the original unless archive-only. Any error is counted and
// logged; it never propagates, so one locked or permission-denied file
// cannot lose the batch. Deletion is never attempted when the archive
// step failed.
func (r *Runner) processOne(c scan.Candidate, stats *RunStats, touched *sweep.DirSet, claims *archiveClaims, log *slog.Logger) {
	destDir, err := archive.ResolveDest(c.Path, r.cfg.Source.Root, r.cfg.Archive.DestinationRoot, r.cfg.Archive.DirName)
	if err != nil {
		r.fail(stats, log, c, "resolve destination", err)
		return
	}

	archivePath := archive.ArchivePath(c.Path, destDir)
	if !claims.claim(archivePath) {
		r.fail(stats, log, c, "resolve destination",
			fmt.Errorf("archive %q already produced by another source file this run", archivePath))
		return
	}

	if r.dryRun {
		log.Info("would archive",
			"path", c.Path,
			"archive", archivePath,
			"age_days", ageDays(c.ModTime),
			"bytes", c.Size,
			"delete_original", !r.cfg.Archive.ArchiveOnly,
		)
		stats.recordArchived(c.Size, c.OnDiskSize, 0)
		return
	}

	if err := archive.EnsureDir(destDir); err != nil {
		r.fail(stats, log, c, "prepare destination", err)
		return
	}
	touched.Add(destDir)

	if r.reclaimActive && c.Compressed {
		if _, decompressed, err := r.reclaimer.Reclaim(c.Path); err != nil {
			// Archive whatever on-disk form the file has.
			log.Warn("filesystem compression reclaim failed", "path", c.Path, "error", err)
		} else if decompressed {
			log.Debug("reclaimed filesystem compression", "path", c.Path)
		}
	}

	times, err := platform.CaptureTimes(c.Path)
	if err != nil {
		r.fail(stats, log, c, "read timestamps", err)
		return
	}

	entry, err := archive.Write(c.Path, destDir, times)
	if err != nil {
		r.fail(stats, log, c, "archive", err)
		return
	}

	if !r.cfg.Archive.ArchiveOnly {
		if err := os.Remove(c.Path); err != nil {
			r.fail(stats, log, c, "delete original", err)
			return
		}
	}

	// Sizes are measured at discovery, before any reclaim, and recorded
	// exactly once per file.
	stats.recordArchived(c.Size, c.OnDiskSize, entry.ArchiveSize)

	log.Info("archived file",
		"path", c.Path,
		"archive", entry.ArchivePath,
		"age_days", ageDays(c.ModTime),
		"bytes", c.Size,
		"archive_bytes", entry.ArchiveSize,
		"ratio", fmt.Sprintf("%.2f", archive.Ratio(entry.ArchiveSize, c.Size)),
		"deleted", !r.cfg.Archive.ArchiveOnly,
	)
}

func (r *Runner) fail(stats *RunStats, log *slog.Logger, c scan.Candidate, op string, err error) {
	stats.recordFailure()
	log.Error("file processing failed", "path", c.Path, "op", op, "error", err)
}

func ageDays(mtime time.Time) int {
	return int(time.Since(mtime).Hours() / 24)
}

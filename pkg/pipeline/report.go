package pipeline

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Phase names used in PhaseError and timings.
const (
	PhaseValidate = "validate"
	PhaseDiscover = "discover"
	PhaseProcess  = "process"
	PhaseSweep    = "sweep"
)

// PhaseError is a fatal error attributed to the phase that raised it.
// Only validate and discover produce fatal errors; later phases degrade
// to per-file failures.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s phase: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// RunStats accumulates counters while a run is in flight. All fields
// are atomic so pool workers combine without lost updates. Sizes are
// accumulated exactly once per file, on success only.
type RunStats struct {
	archived       atomic.Int64
	failed         atomic.Int64
	logicalBytes   atomic.Int64
	onDiskBytes    atomic.Int64
	archivedBytes  atomic.Int64
}

// PhaseTimings records wall-clock duration per phase.
type PhaseTimings struct {
	Validate time.Duration
	Discover time.Duration
	Process  time.Duration
	Sweep    time.Duration
}

// RunReport is the immutable outcome of one run.
type RunReport struct {
	// RunID uniquely identifies the run across logs and metrics.
	RunID string
	// Start and End bound the run.
	Start time.Time
	End   time.Time
	// DryRun marks a run that modified nothing.
	DryRun bool

	// Archived counts files successfully archived (in a dry run, files
	// that would have been).
	Archived int
	// Skipped counts recognized files newer than the cutoff.
	Skipped int
	// Failed counts files whose per-file operation failed.
	Failed int
	// WalkErrors counts unreadable entries below the source root.
	WalkErrors int

	// LogicalBytes, OnDiskBytes and ArchivedBytes aggregate sizes over
	// archived files only, each accumulated exactly once per file.
	// Logical and on-disk sizes are measured before any
	// filesystem-compression reclaim.
	LogicalBytes  int64
	OnDiskBytes   int64
	ArchivedBytes int64

	// PrunedArchives and PrunedBytes summarize the archive sweep.
	PrunedArchives int
	PrunedBytes    int64

	// FreeBefore and FreeAfter are source-volume free space, valid only
	// when FreeKnown is set.
	FreeBefore uint64
	FreeAfter  uint64
	FreeKnown  bool

	// Timings holds per-phase durations.
	Timings PhaseTimings
}

// Duration is the wall-clock time of the whole run.
func (r *RunReport) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// SpaceSavedLogical is the saving relative to the originals' logical
// size. Negative when archives expanded the data.
func (r *RunReport) SpaceSavedLogical() int64 {
	return r.LogicalBytes - r.ArchivedBytes
}

// SpaceSavedOnDisk is the saving relative to the originals' on-disk
// allocation.
func (r *RunReport) SpaceSavedOnDisk() int64 {
	return r.OnDiskBytes - r.ArchivedBytes
}

// ReclaimedBytes is the space actually freed: on-disk bytes of deleted
// originals plus swept archives. Archive-only runs free only swept
// archives.
func (r *RunReport) ReclaimedBytes(archiveOnly bool) int64 {
	if archiveOnly {
		return r.PrunedBytes
	}
	return r.OnDiskBytes + r.PrunedBytes
}

func (s *RunStats) recordArchived(logical, onDisk, archiveSize int64) {
	s.archived.Add(1)
	s.logicalBytes.Add(logical)
	s.onDiskBytes.Add(onDisk)
	s.archivedBytes.Add(archiveSize)
}

func (s *RunStats) recordFailure() {
	s.failed.Add(1)
}

func (s *RunStats) snapshotInto(r *RunReport) {
	r.Archived = int(s.archived.Load())
	r.Failed = int(s.failed.Load())
	r.LogicalBytes = s.logicalBytes.Load()
	r.OnDiskBytes = s.onDiskBytes.Load()
	r.ArchivedBytes = s.archivedBytes.Load()
}

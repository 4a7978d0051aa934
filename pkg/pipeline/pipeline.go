package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mchris2/logsweep/pkg/cli"
	"github.com/mchris2/logsweep/pkg/config"
	"github.com/mchris2/logsweep/pkg/notify"
	"github.com/mchris2/logsweep/pkg/platform"
	"github.com/mchris2/logsweep/pkg/scan"
	"github.com/mchris2/logsweep/pkg/sweep"
	"github.com/mchris2/logsweep/pkg/telemetry/metrics"
)

// Options configures a Runner beyond its Config.
type Options struct {
	// Log receives all run output, including the summary. Nil falls
	// back to the process default.
	Log *slog.Logger
	// Reclaimer overrides the platform reclaimer, for tests.
	Reclaimer platform.Reclaimer
	// Collector records run outcomes when metrics are enabled. Nil
	// disables recording.
	Collector *metrics.Collector
	// Progress receives per-file progress during the process phase.
	// Nil disables progress reporting.
	Progress cli.ProgressReporter
	// DryRun walks and reports without writing, deleting or pruning.
	DryRun bool
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Runner executes archival runs against one configuration. A Runner is
// reusable; each Run builds fresh state.
type Runner struct {
	cfg       *config.Config
	log       *slog.Logger
	reclaimer platform.Reclaimer
	collector *metrics.Collector
	progress  cli.ProgressReporter
	dryRun    bool
	now       func() time.Time

	reclaimActive bool
}

// NewRunner creates a runner for cfg.
func NewRunner(cfg *config.Config, opts Options) *Runner {
	log := opts.Log
	if log == nil {
		log = slog.Default().With("component", "pipeline")
	}
	reclaimer := opts.Reclaimer
	if reclaimer == nil {
		reclaimer = platform.NewReclaimer()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	progress := opts.Progress
	if progress == nil {
		progress = &cli.NoopProgress{}
	}
	return &Runner{
		cfg:       cfg,
		log:       log,
		reclaimer: reclaimer,
		collector: opts.Collector,
		progress:  progress,
		dryRun:    opts.DryRun,
		now:       now,
	}
}

// Run executes the four phases. Validation and enumeration failures are
// fatal: they return a PhaseError, emit an OS-level notification, and
// render no summary. Everything after discovery degrades to per-file
// failures and the run completes with a report.
func (r *Runner) Run(ctx context.Context) (*RunReport, error) {
	report := &RunReport{
		RunID:  uuid.New().String(),
		Start:  r.now(),
		DryRun: r.dryRun,
	}
	log := r.log.With("run_id", report.RunID)

	log.Info("run starting",
		"source", r.cfg.Source.Root,
		"destination", r.cfg.Archive.DestinationRoot,
		"retention_days", r.cfg.Source.RetentionDays,
		"archive_retention_days", r.cfg.Archive.RetentionDays,
		"archive_only", r.cfg.Archive.ArchiveOnly,
		"workers", r.cfg.Pipeline.Workers,
		"dry_run", r.dryRun,
	)

	// Phase 1: validate.
	phaseStart := r.now()
	if err := r.validate(log); err != nil {
		log.Error("validation failed", "error", err)
		notify.Fatal("logsweep run aborted", err.Error())
		return nil, &PhaseError{Phase: PhaseValidate, Err: err}
	}
	report.Timings.Validate = r.now().Sub(phaseStart)

	if free, _, err := platform.FreeSpace(r.cfg.Source.Root); err == nil {
		report.FreeBefore = free
		report.FreeKnown = true
	}

	// Phase 2: discover.
	phaseStart = r.now()
	cutoff := scan.CutoffFor(report.Start, r.cfg.Source.RetentionDays)
	scanner := scan.NewScanner(r.cfg.Source.Extensions, r.cfg.Archive.DirName, log.With("component", "scan"))

	found, err := scanner.Discover(r.cfg.Source.Root, cutoff)
	if err != nil {
		log.Error("enumeration failed", "error", err)
		notify.Fatal("logsweep enumeration failure", err.Error())
		return nil, &PhaseError{Phase: PhaseDiscover, Err: err}
	}
	report.Timings.Discover = r.now().Sub(phaseStart)
	report.Skipped = found.Skipped
	report.WalkErrors = found.WalkErrors

	log.Info("discovery complete",
		"candidates", len(found.Candidates),
		"skipped", found.Skipped,
		"walk_errors", found.WalkErrors,
		"cutoff", cutoff.Format(time.RFC3339),
	)

	// Phase 3: process.
	phaseStart = r.now()
	stats := &RunStats{}
	touched := sweep.NewDirSet()
	r.process(ctx, found.Candidates, stats, touched, log)
	report.Timings.Process = r.now().Sub(phaseStart)
	stats.snapshotInto(report)

	// Phase 4: sweep and report.
	phaseStart = r.now()
	if r.dryRun {
		log.Info("dry run: skipping archive sweep")
	} else if touched.Len() > 0 {
		pruneCutoff := scan.CutoffFor(report.Start, r.cfg.Archive.RetentionDays)
		pruner := sweep.NewPruner(log.With("component", "sweep"))
		pruned := pruner.Prune(touched.Sorted(), pruneCutoff)
		report.PrunedArchives = pruned.Deleted
		report.PrunedBytes = pruned.Bytes
	}
	report.Timings.Sweep = r.now().Sub(phaseStart)

	if report.FreeKnown {
		if free, _, err := platform.FreeSpace(r.cfg.Source.Root); err == nil {
			report.FreeAfter = free
		} else {
			report.FreeKnown = false
		}
	}

	report.End = r.now()

	for _, line := range Summarize(report) {
		log.Info(line)
	}

	r.export(report, log)

	return report, nil
}

// export records the run into metrics. Dry runs record nothing.
func (r *Runner) export(report *RunReport, log *slog.Logger) {
	if r.collector == nil || r.dryRun {
		return
	}

	r.collector.RecordRun(metrics.RunSample{
		Archived:       report.Archived,
		Failed:         report.Failed,
		Skipped:        report.Skipped,
		Pruned:         report.PrunedArchives,
		BytesArchived:  report.ArchivedBytes,
		BytesReclaimed: report.ReclaimedBytes(r.cfg.Archive.ArchiveOnly),
		Duration:       report.Duration(),
		Finished:       report.End,
		DiskFree:       report.FreeAfter,
		DiskFreeKnown:  report.FreeKnown,
	})

	if err := r.collector.WriteTextfile(); err != nil {
		log.Warn("metrics textfile export failed", "error", err)
	}
}

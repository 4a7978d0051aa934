package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mchris2/logsweep/pkg/archive"
	"github.com/mchris2/logsweep/pkg/config"
	"github.com/mchris2/logsweep/pkg/platform"
	"github.com/mchris2/logsweep/pkg/telemetry/logging"
)

// validate runs the pre-run checks. The first failure halts the run;
// nothing is modified before every check passes (the destination root,
// if configured, is created here so its writability can be probed).
func (r *Runner) validate(log *slog.Logger) error {
	if r.cfg.Source.RetentionDays <= 0 {
		return fmt.Errorf("source retention must be positive, got %d days", r.cfg.Source.RetentionDays)
	}
	if r.cfg.Archive.RetentionDays <= 0 {
		return fmt.Errorf("archive retention must be positive, got %d days", r.cfg.Archive.RetentionDays)
	}

	if err := checkReadableDir(r.cfg.Source.Root); err != nil {
		return fmt.Errorf("source root: %w", err)
	}

	if dest := r.cfg.Archive.DestinationRoot; dest != "" {
		if err := archive.EnsureDir(dest); err != nil {
			return fmt.Errorf("destination root: %w", err)
		}
		if err := probeWritable(dest); err != nil {
			return fmt.Errorf("destination root not writable: %w", err)
		}
	}

	if logPath := r.cfg.Logging.File; logPath != logging.NoFile {
		if logPath == "" {
			logPath = logging.DefaultPath()
		}
		if err := probeWritable(filepath.Dir(logPath)); err != nil {
			return fmt.Errorf("log directory not writable: %w", err)
		}
	}

	// Reclaim is capability-gated: requested but unsupported degrades to
	// a no-op with a single warning, never a failure.
	r.reclaimActive = false
	if r.cfg.Archive.ReclaimCompression {
		probe := r.reclaimer.Probe()
		r.reclaimActive = probe.Supported
		if !probe.Supported {
			log.Warn("filesystem compression reclaim unavailable, continuing without it", "reason", probe.Reason)
		}
	}

	return nil
}

// Check is the outcome of one preflight probe.
type Check struct {
	// Name identifies the probe.
	Name string
	// Detail adds context regardless of outcome (e.g. the probed path).
	Detail string
	// Err is nil when the probe passed.
	Err error
}

// OK reports whether the check passed.
func (c Check) OK() bool {
	return c.Err == nil
}

// Preflight runs every pre-run check and returns all outcomes, unlike
// the in-run validation which halts on the first failure. The reclaim
// capability is always probed so the report can state whether the
// feature would be available, even when it is not enabled.
func Preflight(cfg *config.Config, reclaimer platform.Reclaimer) []Check {
	if reclaimer == nil {
		reclaimer = platform.NewReclaimer()
	}
	checks := make([]Check, 0, 6)

	retErr := error(nil)
	if cfg.Source.RetentionDays <= 0 {
		retErr = fmt.Errorf("must be positive, got %d", cfg.Source.RetentionDays)
	}
	checks = append(checks, Check{
		Name:   "source retention window",
		Detail: fmt.Sprintf("%d days", cfg.Source.RetentionDays),
		Err:    retErr,
	})

	retErr = nil
	if cfg.Archive.RetentionDays <= 0 {
		retErr = fmt.Errorf("must be positive, got %d", cfg.Archive.RetentionDays)
	}
	checks = append(checks, Check{
		Name:   "archive retention window",
		Detail: fmt.Sprintf("%d days", cfg.Archive.RetentionDays),
		Err:    retErr,
	})

	checks = append(checks, Check{
		Name:   "source root readable",
		Detail: cfg.Source.Root,
		Err:    checkReadableDir(cfg.Source.Root),
	})

	if dest := cfg.Archive.DestinationRoot; dest != "" {
		err := archive.EnsureDir(dest)
		if err == nil {
			err = probeWritable(dest)
		}
		checks = append(checks, Check{
			Name:   "destination root writable",
			Detail: dest,
			Err:    err,
		})
	} else {
		checks = append(checks, Check{
			Name:   "destination",
			Detail: fmt.Sprintf("sibling %q directories", cfg.Archive.DirName),
		})
	}

	logPath := cfg.Logging.File
	switch logPath {
	case logging.NoFile:
		checks = append(checks, Check{Name: "log file", Detail: "disabled"})
	default:
		if logPath == "" {
			logPath = logging.DefaultPath()
		}
		checks = append(checks, Check{
			Name:   "log directory writable",
			Detail: filepath.Dir(logPath),
			Err:    probeWritable(filepath.Dir(logPath)),
		})
	}

	probe := reclaimer.Probe()
	detail := probe.Reason
	if probe.Supported {
		detail = "supported"
	}
	if !cfg.Archive.ReclaimCompression {
		detail += " (not enabled)"
	}
	checks = append(checks, Check{
		Name:   "filesystem compression reclaim",
		Detail: detail,
	})

	return checks
}

// checkReadableDir verifies path is a directory we can list.
func checkReadableDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("cannot list %q: %w", path, err)
	}
	return nil
}

// probeWritable proves a directory accepts writes by creating and
// removing a scratch file. A stat-only check would miss read-only
// mounts and ACLs.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".logsweep-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Remove(name)
}

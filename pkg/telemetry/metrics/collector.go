package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchris2/logsweep/pkg/config"
)

// namespace prefixes every metric name.
const namespace = "logsweep"

// RunSample carries the outcome of one pipeline run into the collector.
// It mirrors the run report without pulling the pipeline package into
// the metrics dependency graph.
type RunSample struct {
	// Archived counts files successfully archived.
	Archived int
	// Failed counts files whose per-file operation failed.
	Failed int
	// Skipped counts recognized files newer than the cutoff.
	Skipped int
	// Pruned counts expired archives deleted by the sweep.
	Pruned int
	// BytesArchived is the total size of archives written.
	BytesArchived int64
	// BytesReclaimed is the space freed by deleting originals and
	// expired archives.
	BytesReclaimed int64
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// Finished is when the run completed.
	Finished time.Time
	// DiskFree is the free space on the source volume after the run;
	// valid only when DiskFreeKnown is set.
	DiskFree      uint64
	DiskFreeKnown bool
}

// Collector registers and records all logsweep metrics.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	filesArchived  prometheus.Counter
	filesFailed    prometheus.Counter
	filesSkipped   prometheus.Counter
	archivesPruned prometheus.Counter
	bytesArchived  prometheus.Counter
	bytesReclaimed prometheus.Counter

	lastRunTimestamp prometheus.Gauge
	lastRunDuration  prometheus.Gauge
	diskFreeBytes    prometheus.Gauge
}

// NewCollector creates a collector registered against the given
// registry. If registry is nil a private registry is created, which
// keeps process-default metrics out of the textfile export.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		filesArchived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_archived_total",
			Help:      "Total number of source files archived",
		}),
		filesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_failed_total",
			Help:      "Total number of per-file operations that failed",
		}),
		filesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_skipped_total",
			Help:      "Total number of recognized files skipped as too recent",
		}),
		archivesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archives_pruned_total",
			Help:      "Total number of expired archives deleted",
		}),
		bytesArchived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_archived_total",
			Help:      "Total bytes written as archives",
		}),
		bytesReclaimed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_reclaimed_total",
			Help:      "Total bytes freed by deleting originals and expired archives",
		}),

		lastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last completed run",
		}),
		lastRunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_duration_seconds",
			Help:      "Wall-clock duration of the last run in seconds",
		}),
		diskFreeBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "disk_free_bytes",
			Help:      "Free space on the source volume after the last run",
		}),
	}

	registry.MustRegister(
		c.filesArchived,
		c.filesFailed,
		c.filesSkipped,
		c.archivesPruned,
		c.bytesArchived,
		c.bytesReclaimed,
		c.lastRunTimestamp,
		c.lastRunDuration,
		c.diskFreeBytes,
	)

	return c
}

// RecordRun folds one run's outcome into the metrics. Disabled
// collectors record nothing.
func (c *Collector) RecordRun(sample RunSample) {
	if !c.config.Enabled {
		return
	}

	c.filesArchived.Add(float64(sample.Archived))
	c.filesFailed.Add(float64(sample.Failed))
	c.filesSkipped.Add(float64(sample.Skipped))
	c.archivesPruned.Add(float64(sample.Pruned))
	c.bytesArchived.Add(float64(sample.BytesArchived))
	c.bytesReclaimed.Add(float64(sample.BytesReclaimed))

	c.lastRunTimestamp.Set(float64(sample.Finished.Unix()))
	c.lastRunDuration.Set(sample.Duration.Seconds())
	if sample.DiskFreeKnown {
		c.diskFreeBytes.Set(float64(sample.DiskFree))
	}
}

// Registry exposes the underlying registry for export paths.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

package config

// Config is the root configuration structure for logsweep.
// It contains all configuration sections for source discovery, archive
// placement and retention, pipeline execution, logging, scheduling, and
// metrics export.
type Config struct {
	// Source contains configuration for the source tree being swept:
	// the root directory, the retention window, and the recognized
	// log-file extensions.
	Source SourceConfig `yaml:"source"`

	// Archive contains configuration for archive placement and the
	// archive retention window.
	Archive ArchiveConfig `yaml:"archive"`

	// Pipeline contains configuration for run execution: worker count
	// and strict exit behavior.
	Pipeline PipelineConfig `yaml:"pipeline"`

	// Logging contains configuration for the run log file and console
	// output.
	Logging LoggingConfig `yaml:"logging"`

	// Schedule contains configuration for daemon mode: the cron
	// expression and the optional metrics listen address.
	Schedule ScheduleConfig `yaml:"schedule"`

	// Metrics contains configuration for Prometheus metrics export.
	Metrics MetricsConfig `yaml:"metrics"`
}

// SourceConfig contains configuration for the source tree being swept.
type SourceConfig struct {
	// Root is the directory tree to walk for log files.
	// Default: "." (the current directory)
	Root string `yaml:"root"`

	// RetentionDays is the source retention window in days. A file is
	// eligible for archival only when its last-modified time is strictly
	// older than now minus this window.
	// Default: 30
	RetentionDays int `yaml:"retention_days"`

	// Extensions is the set of recognized log-file extensions, matched
	// case-insensitively. Each entry must begin with a dot.
	// Default: [".log", ".txt", ".out", ".err", ".trace"]
	Extensions []string `yaml:"extensions"`
}

// ArchiveConfig contains configuration for archive placement and retention.
type ArchiveConfig struct {
	// DestinationRoot is the global archive destination. When set, the
	// archive tree mirrors the source tree under this root. When empty,
	// each archive is placed in an "Archive" subdirectory beside its
	// source file.
	// Default: "" (sibling Archive directories)
	DestinationRoot string `yaml:"destination_root"`

	// RetentionDays is the archive retention window in days. An archive
	// is eligible for pruning only when its last-modified time is
	// strictly older than now minus this window.
	// Default: 90
	RetentionDays int `yaml:"retention_days"`

	// ArchiveOnly suppresses deletion of original files after a
	// successful archive write.
	// Default: false
	ArchiveOnly bool `yaml:"archive_only"`

	// ReclaimCompression removes platform filesystem compression from a
	// file before archiving it, so deleting the original frees the
	// logical size the summary reports. On platforms without filesystem
	// compression the setting degrades to a logged no-op.
	// Default: false
	ReclaimCompression bool `yaml:"reclaim_compression"`

	// DirName is the name of the per-directory archive subdirectory used
	// in sibling mode. Directories with this exact name are excluded
	// from discovery at any depth.
	// Default: "Archive"
	DirName string `yaml:"dir_name"`
}

// PipelineConfig contains configuration for run execution.
type PipelineConfig struct {
	// Workers is the number of concurrent archival workers. The
	// sequential default matches the single-writer design; higher values
	// parallelize per-file archival.
	// Default: 1
	Workers int `yaml:"workers"`

	// Strict makes the process exit non-zero when the run completed but
	// one or more per-file operations failed.
	// Default: false
	Strict bool `yaml:"strict"`
}

// LoggingConfig contains configuration for the run log and console output.
type LoggingConfig struct {
	// File is the path of the run log. When empty, the log is written
	// beside the executable as "logsweep.log".
	// Default: ""
	File string `yaml:"file"`

	// Level is the minimum severity recorded: debug, info, warn, error.
	// Default: "info"
	Level string `yaml:"level"`

	// Format selects the log line format: "bracket" for
	// "[timestamp] [LEVEL] message" lines, or "json".
	// Default: "bracket"
	Format string `yaml:"format"`

	// MaxSizeMB is the rotation threshold. When the log file exceeds
	// this size before a run, it is renamed to a timestamped backup and
	// a fresh log is started.
	// Default: 10
	MaxSizeMB int `yaml:"max_size_mb"`

	// Quiet suppresses console output; records still go to the log
	// file.
	// Default: false
	Quiet bool `yaml:"quiet"`
}

// ScheduleConfig contains configuration for daemon mode.
type ScheduleConfig struct {
	// Cron is the standard five-field cron expression controlling when
	// scheduled runs fire.
	// Default: "0 3 * * *" (daily at 03:00)
	Cron string `yaml:"cron"`

	// MetricsListen is the optional address for the daemon's Prometheus
	// metrics endpoint (e.g. "127.0.0.1:9183"). Empty disables the
	// listener.
	// Default: ""
	MetricsListen string `yaml:"metrics_listen"`
}

// MetricsConfig contains configuration for Prometheus metrics export.
type MetricsConfig struct {
	// Enabled controls whether run statistics are recorded as
	// Prometheus metrics.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// TextfileDir is the directory where a "logsweep.prom" textfile is
	// written after each run, in the format consumed by the
	// node_exporter textfile collector. Empty disables the textfile.
	// Default: ""
	TextfileDir string `yaml:"textfile_dir"`
}

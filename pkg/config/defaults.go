package config

// Default values for configuration fields.
const (
	// Source defaults
	DefaultSourceRoot          = "."
	DefaultSourceRetentionDays = 30

	// Archive defaults
	DefaultArchiveRetentionDays = 90
	DefaultArchiveDirName       = "Archive"

	// Pipeline defaults
	DefaultWorkers = 1

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "bracket"
	DefaultLogMaxSizeMB  = 10
	DefaultLogFileName   = "logsweep.log"

	// Schedule defaults
	DefaultCronSchedule = "0 3 * * *"
)

// DefaultExtensions is the recognized log-file extension set applied when
// the configuration does not name its own.
var DefaultExtensions = []string{".log", ".txt", ".out", ".err", ".trace"}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Source defaults
	if cfg.Source.Root == "" {
		cfg.Source.Root = DefaultSourceRoot
	}
	if cfg.Source.RetentionDays == 0 {
		cfg.Source.RetentionDays = DefaultSourceRetentionDays
	}
	if len(cfg.Source.Extensions) == 0 {
		cfg.Source.Extensions = append([]string(nil), DefaultExtensions...)
	}

	// Archive defaults
	if cfg.Archive.RetentionDays == 0 {
		cfg.Archive.RetentionDays = DefaultArchiveRetentionDays
	}
	if cfg.Archive.DirName == "" {
		cfg.Archive.DirName = DefaultArchiveDirName
	}

	// Pipeline defaults
	if cfg.Pipeline.Workers == 0 {
		cfg.Pipeline.Workers = DefaultWorkers
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Logging.MaxSizeMB == 0 {
		cfg.Logging.MaxSizeMB = DefaultLogMaxSizeMB
	}

	// Schedule defaults
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = DefaultCronSchedule
	}

	// ArchiveOnly, ReclaimCompression, Strict, Quiet, and Metrics.Enabled
	// default to false (zero values), which is correct.
}

// DefaultConfig returns a configuration populated entirely from defaults.
// It is used when no configuration file exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

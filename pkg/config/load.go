package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	// Parse YAML
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	// Apply defaults
	ApplyDefaults(&cfg)

	// Validate
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention LOGSWEEP_SECTION_FIELD (e.g., LOGSWEEP_SOURCE_ROOT) and always
// take precedence over file-based configuration.
//
// When path is empty, the standard locations are searched (see
// LocateConfigFile); if no file exists anywhere, loading starts from the
// built-in defaults, so the tool runs file-less.
//
// The loading sequence is:
//  1. Load YAML from file (or start from defaults)
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	if path == "" {
		path = LocateConfigFile()
	}

	var cfg *Config
	if path == "" {
		cfg = DefaultConfig()
	} else {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Re-validate after overrides
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// LocateConfigFile returns the first existing configuration file among the
// standard locations, or the empty string when none exists:
//
//	./logsweep.yaml
//	~/.config/logsweep/config.yaml
//	/etc/logsweep/config.yaml
func LocateConfigFile() string {
	candidates := []string{"logsweep.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "logsweep", "config.yaml"))
	}
	candidates = append(candidates, filepath.Join("/etc", "logsweep", "config.yaml"))

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format LOGSWEEP_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Source overrides
	if val := os.Getenv("LOGSWEEP_SOURCE_ROOT"); val != "" {
		cfg.Source.Root = val
	}
	if val := os.Getenv("LOGSWEEP_SOURCE_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Source.RetentionDays = i
		}
	}
	if val := os.Getenv("LOGSWEEP_SOURCE_EXTENSIONS"); val != "" {
		cfg.Source.Extensions = splitExtensions(val)
	}

	// Archive overrides
	if val := os.Getenv("LOGSWEEP_ARCHIVE_DESTINATION_ROOT"); val != "" {
		cfg.Archive.DestinationRoot = val
	}
	if val := os.Getenv("LOGSWEEP_ARCHIVE_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Archive.RetentionDays = i
		}
	}
	if val := os.Getenv("LOGSWEEP_ARCHIVE_ONLY"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Archive.ArchiveOnly = b
		}
	}
	if val := os.Getenv("LOGSWEEP_ARCHIVE_RECLAIM_COMPRESSION"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Archive.ReclaimCompression = b
		}
	}
	if val := os.Getenv("LOGSWEEP_ARCHIVE_DIR_NAME"); val != "" {
		cfg.Archive.DirName = val
	}

	// Pipeline overrides
	if val := os.Getenv("LOGSWEEP_PIPELINE_WORKERS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Pipeline.Workers = i
		}
	}
	if val := os.Getenv("LOGSWEEP_PIPELINE_STRICT"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Pipeline.Strict = b
		}
	}

	// Logging overrides
	if val := os.Getenv("LOGSWEEP_LOGGING_FILE"); val != "" {
		cfg.Logging.File = val
	}
	if val := os.Getenv("LOGSWEEP_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("LOGSWEEP_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("LOGSWEEP_LOGGING_MAX_SIZE_MB"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Logging.MaxSizeMB = i
		}
	}
	if val := os.Getenv("LOGSWEEP_LOGGING_QUIET"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Logging.Quiet = b
		}
	}

	// Schedule overrides
	if val := os.Getenv("LOGSWEEP_SCHEDULE_CRON"); val != "" {
		cfg.Schedule.Cron = val
	}
	if val := os.Getenv("LOGSWEEP_SCHEDULE_METRICS_LISTEN"); val != "" {
		cfg.Schedule.MetricsListen = val
	}

	// Metrics overrides
	if val := os.Getenv("LOGSWEEP_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("LOGSWEEP_METRICS_TEXTFILE_DIR"); val != "" {
		cfg.Metrics.TextfileDir = val
	}
}

// splitExtensions parses a comma-separated extension list, trimming
// whitespace and dropping empty entries.
func splitExtensions(val string) []string {
	parts := strings.Split(val, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			exts = append(exts, p)
		}
	}
	return exts
}

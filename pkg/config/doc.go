// Package config provides configuration management for logsweep.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with validation and sensible defaults. The tool runs
// without a configuration file: every setting has a default and a
// corresponding command-line flag.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("logsweep.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("logsweep.yaml")
//
// When the path is empty, LoadConfigWithEnvOverrides searches the standard
// locations (./logsweep.yaml, ~/.config/logsweep/config.yaml,
// /etc/logsweep/config.yaml) and falls back to built-in defaults when no
// file exists.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention LOGSWEEP_SECTION_FIELD.
// For example:
//
//   - LOGSWEEP_SOURCE_ROOT overrides source.root
//   - LOGSWEEP_SOURCE_RETENTION_DAYS overrides source.retention_days
//   - LOGSWEEP_ARCHIVE_DESTINATION_ROOT overrides archive.destination_root
//   - LOGSWEEP_LOGGING_LEVEL overrides logging.level
//
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides
// earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Command-line flags (applied by the cmd layer)
//  5. Validation (fails fast if invalid)
//
// # Singleton Pattern
//
// For application-wide configuration access, use the singleton pattern:
//
//	// At application startup
//	if err := config.Initialize("logsweep.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Anywhere in the application
//	cfg := config.GetConfig()
//	fmt.Println(cfg.Source.Root)
//
// For testing, prefer dependency injection with explicit Config instances
// rather than the global singleton.
//
// # Validation
//
// All configuration is validated automatically during loading. Validation
// includes range checks (retention windows must be positive), format checks
// (extensions must begin with a dot), and enumeration checks (logging level
// and format). Validation errors include field paths and helpful messages:
//
//	configuration validation failed with 2 errors:
//	  - source.retention_days: retention days must be positive
//	  - logging.level: invalid logging level "loud": must be 'debug', 'info', 'warn', or 'error'
//
// # Example Configuration
//
// Here is a minimal configuration file:
//
//	source:
//	  root: "/var/log/myapp"
//	  retention_days: 30
//
//	archive:
//	  destination_root: "/srv/log-archives"
//	  retention_days: 90
//
//	logging:
//	  level: "info"
//	  file: "/var/log/logsweep/logsweep.log"
//
// # Thread Safety
//
// All configuration access is thread-safe. The singleton pattern uses
// read-write locks to allow concurrent reads while protecting against
// concurrent writes during reload operations.
package config

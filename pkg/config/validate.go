package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "source.root").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateSource(&cfg.Source)...)
	errs = append(errs, validateArchive(&cfg.Archive)...)
	errs = append(errs, validatePipeline(&cfg.Pipeline)...)
	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateSchedule(&cfg.Schedule)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateSource validates source tree configuration.
func validateSource(cfg *SourceConfig) []FieldError {
	var errs []FieldError

	if cfg.Root == "" {
		errs = append(errs, FieldError{
			Field:   "source.root",
			Message: "source root is required",
		})
	}

	if cfg.RetentionDays <= 0 {
		errs = append(errs, FieldError{
			Field:   "source.retention_days",
			Message: "retention days must be positive",
		})
	}
	if cfg.RetentionDays > 3650 { // 10 years is excessive
		errs = append(errs, FieldError{
			Field:   "source.retention_days",
			Message: "retention days exceeds reasonable limit (3650 days / 10 years)",
		})
	}

	if len(cfg.Extensions) == 0 {
		errs = append(errs, FieldError{
			Field:   "source.extensions",
			Message: "at least one extension is required",
		})
	}
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, FieldError{
				Field:   "source.extensions",
				Message: fmt.Sprintf("invalid extension %q: must begin with a dot", ext),
			})
		}
	}

	return errs
}

// validateArchive validates archive placement and retention configuration.
func validateArchive(cfg *ArchiveConfig) []FieldError {
	var errs []FieldError

	if cfg.RetentionDays <= 0 {
		errs = append(errs, FieldError{
			Field:   "archive.retention_days",
			Message: "retention days must be positive",
		})
	}
	if cfg.RetentionDays > 3650 {
		errs = append(errs, FieldError{
			Field:   "archive.retention_days",
			Message: "retention days exceeds reasonable limit (3650 days / 10 years)",
		})
	}

	if cfg.DirName == "" {
		errs = append(errs, FieldError{
			Field:   "archive.dir_name",
			Message: "archive directory name is required",
		})
	} else if strings.ContainsAny(cfg.DirName, `/\`) {
		errs = append(errs, FieldError{
			Field:   "archive.dir_name",
			Message: fmt.Sprintf("invalid directory name %q: must be a single path component", cfg.DirName),
		})
	}

	return errs
}

// validatePipeline validates run execution configuration.
func validatePipeline(cfg *PipelineConfig) []FieldError {
	var errs []FieldError

	if cfg.Workers < 1 {
		errs = append(errs, FieldError{
			Field:   "pipeline.workers",
			Message: "workers must be at least 1",
		})
	}
	if cfg.Workers > 64 {
		errs = append(errs, FieldError{
			Field:   "pipeline.workers",
			Message: "workers exceeds reasonable limit (64)",
		})
	}

	return errs
}

// validateLogging validates logging configuration.
func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if cfg.Level == "" {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: "logging level is required",
		})
	} else if !validLevels[cfg.Level] {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Level),
		})
	}

	validFormats := map[string]bool{"bracket": true, "json": true}
	if cfg.Format == "" {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: "logging format is required",
		})
	} else if !validFormats[cfg.Format] {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'bracket' or 'json'", cfg.Format),
		})
	}

	if cfg.MaxSizeMB < 1 {
		errs = append(errs, FieldError{
			Field:   "logging.max_size_mb",
			Message: "max size must be at least 1 MB",
		})
	}

	return errs
}

// validateSchedule validates daemon mode configuration. The cron expression
// itself is parsed by the scheduler at start; here only presence is checked.
func validateSchedule(cfg *ScheduleConfig) []FieldError {
	var errs []FieldError

	if cfg.Cron == "" {
		errs = append(errs, FieldError{
			Field:   "schedule.cron",
			Message: "cron expression is required",
		})
	}

	return errs
}

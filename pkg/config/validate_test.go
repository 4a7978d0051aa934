package config

import (
	"strings"
	"testing"
)

// validConfig returns a configuration that passes validation, for tests to
// break one field at a time.
func validConfig() *Config {
	return DefaultConfig()
}

func TestValidate_ValidConfig(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Errorf("expected default config to validate, got: %v", err)
	}
}

func TestValidate_Source(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty root",
			mutate:  func(c *Config) { c.Source.Root = "" },
			wantErr: "source root is required",
		},
		{
			name:    "zero retention days",
			mutate:  func(c *Config) { c.Source.RetentionDays = 0 },
			wantErr: "retention days must be positive",
		},
		{
			name:    "negative retention days",
			mutate:  func(c *Config) { c.Source.RetentionDays = -10 },
			wantErr: "retention days must be positive",
		},
		{
			name:    "excessive retention days",
			mutate:  func(c *Config) { c.Source.RetentionDays = 4000 },
			wantErr: "exceeds reasonable limit",
		},
		{
			name:    "no extensions",
			mutate:  func(c *Config) { c.Source.Extensions = nil },
			wantErr: "at least one extension is required",
		},
		{
			name:    "extension without dot",
			mutate:  func(c *Config) { c.Source.Extensions = []string{"log"} },
			wantErr: "must begin with a dot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_Archive(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero retention days",
			mutate:  func(c *Config) { c.Archive.RetentionDays = 0 },
			wantErr: "retention days must be positive",
		},
		{
			name:    "excessive retention days",
			mutate:  func(c *Config) { c.Archive.RetentionDays = 9999 },
			wantErr: "exceeds reasonable limit",
		},
		{
			name:    "empty dir name",
			mutate:  func(c *Config) { c.Archive.DirName = "" },
			wantErr: "archive directory name is required",
		},
		{
			name:    "dir name with separator",
			mutate:  func(c *Config) { c.Archive.DirName = "a/b" },
			wantErr: "must be a single path component",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_PipelineAndLogging(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Pipeline.Workers = 0 },
			wantErr: "workers must be at least 1",
		},
		{
			name:    "excessive workers",
			mutate:  func(c *Config) { c.Pipeline.Workers = 1000 },
			wantErr: "workers exceeds reasonable limit",
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
		{
			name:    "zero max size",
			mutate:  func(c *Config) { c.Logging.MaxSizeMB = -1 },
			wantErr: "max size must be at least 1 MB",
		},
		{
			name:    "empty cron",
			mutate:  func(c *Config) { c.Schedule.Cron = "" },
			wantErr: "cron expression is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidationError_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Source.RetentionDays = -1
	cfg.Archive.RetentionDays = -1
	cfg.Logging.Level = "loud"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(verr.Errors), verr)
	}
	if !strings.Contains(err.Error(), "3 errors") {
		t.Errorf("expected aggregate message to mention 3 errors, got: %v", err)
	}
}

func TestFieldError_Format(t *testing.T) {
	err := FieldError{Field: "source.root", Message: "source root is required"}
	want := "source.root: source root is required"
	if err.Error() != want {
		t.Errorf("FieldError.Error() = %q, want %q", err.Error(), want)
	}
}

package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input Config
		check func(*testing.T, *Config)
	}{
		{
			name:  "empty config gets all defaults",
			input: Config{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Source.Root != DefaultSourceRoot {
					t.Errorf("expected source root %q, got %q", DefaultSourceRoot, cfg.Source.Root)
				}
				if cfg.Source.RetentionDays != DefaultSourceRetentionDays {
					t.Errorf("expected retention days %d, got %d", DefaultSourceRetentionDays, cfg.Source.RetentionDays)
				}
				if len(cfg.Source.Extensions) != len(DefaultExtensions) {
					t.Errorf("expected %d default extensions, got %v", len(DefaultExtensions), cfg.Source.Extensions)
				}
				if cfg.Archive.RetentionDays != DefaultArchiveRetentionDays {
					t.Errorf("expected archive retention days %d, got %d", DefaultArchiveRetentionDays, cfg.Archive.RetentionDays)
				}
				if cfg.Archive.DirName != DefaultArchiveDirName {
					t.Errorf("expected archive dir name %q, got %q", DefaultArchiveDirName, cfg.Archive.DirName)
				}
				if cfg.Pipeline.Workers != DefaultWorkers {
					t.Errorf("expected workers %d, got %d", DefaultWorkers, cfg.Pipeline.Workers)
				}
				if cfg.Logging.Level != DefaultLoggingLevel {
					t.Errorf("expected logging level %q, got %q", DefaultLoggingLevel, cfg.Logging.Level)
				}
				if cfg.Logging.Format != DefaultLoggingFormat {
					t.Errorf("expected logging format %q, got %q", DefaultLoggingFormat, cfg.Logging.Format)
				}
				if cfg.Logging.MaxSizeMB != DefaultLogMaxSizeMB {
					t.Errorf("expected max size %d, got %d", DefaultLogMaxSizeMB, cfg.Logging.MaxSizeMB)
				}
				if cfg.Schedule.Cron != DefaultCronSchedule {
					t.Errorf("expected cron %q, got %q", DefaultCronSchedule, cfg.Schedule.Cron)
				}
			},
		},
		{
			name: "existing values are preserved",
			input: Config{
				Source: SourceConfig{
					Root:          "/data/logs",
					RetentionDays: 7,
					Extensions:    []string{".audit"},
				},
				Archive: ArchiveConfig{
					RetentionDays: 180,
					DirName:       "old",
				},
				Pipeline: PipelineConfig{Workers: 4},
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Source.Root != "/data/logs" {
					t.Error("existing source root was overwritten")
				}
				if cfg.Source.RetentionDays != 7 {
					t.Error("existing retention days were overwritten")
				}
				if len(cfg.Source.Extensions) != 1 || cfg.Source.Extensions[0] != ".audit" {
					t.Error("existing extensions were overwritten")
				}
				if cfg.Archive.RetentionDays != 180 {
					t.Error("existing archive retention days were overwritten")
				}
				if cfg.Archive.DirName != "old" {
					t.Error("existing archive dir name was overwritten")
				}
				if cfg.Pipeline.Workers != 4 {
					t.Error("existing worker count was overwritten")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.input
			ApplyDefaults(&cfg)
			tt.check(t, &cfg)
		})
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	cfg := Config{}
	ApplyDefaults(&cfg)
	first := cfg

	ApplyDefaults(&cfg)
	if cfg.Source.Root != first.Source.Root ||
		cfg.Source.RetentionDays != first.Source.RetentionDays ||
		cfg.Archive.RetentionDays != first.Archive.RetentionDays ||
		cfg.Pipeline.Workers != first.Pipeline.Workers {
		t.Error("ApplyDefaults is not idempotent")
	}
}

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()
	if err := Validate(cfg); err != nil {
		t.Errorf("DefaultConfig() does not validate: %v", err)
	}
}

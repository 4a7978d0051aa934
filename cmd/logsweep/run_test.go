package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mchris2/logsweep/pkg/cli"
	"github.com/mchris2/logsweep/pkg/config"
	"github.com/mchris2/logsweep/pkg/pipeline"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation phase failure",
			err:  &pipeline.PhaseError{Phase: pipeline.PhaseValidate, Err: errors.New("bad root")},
			want: cli.ExitCodeValidation,
		},
		{
			name: "discovery phase failure",
			err:  &pipeline.PhaseError{Phase: pipeline.PhaseDiscover, Err: errors.New("unreadable")},
			want: cli.ExitCodeEnumeration,
		},
		{
			name: "wrapped phase error",
			err:  fmt.Errorf("run: %w", &pipeline.PhaseError{Phase: pipeline.PhaseValidate, Err: errors.New("x")}),
			want: cli.ExitCodeValidation,
		},
		{
			name: "plain error",
			err:  errors.New("something else"),
			want: cli.ExitCodeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		val     string
		want    cli.OutputFormat
		wantErr bool
	}{
		{val: "", want: cli.FormatText},
		{val: "text", want: cli.FormatText},
		{val: "json", want: cli.FormatJSON},
		{val: "yaml", wantErr: true},
		{val: "JSON", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.val, func(t *testing.T) {
			got, err := parseOutputFormat(tt.val)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseOutputFormat(%q) should fail", tt.val)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOutputFormat(%q) error = %v", tt.val, err)
			}
			if got != tt.want {
				t.Errorf("parseOutputFormat(%q) = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestRunProgress(t *testing.T) {
	cfg := config.DefaultConfig()

	if _, ok := runProgress(cfg).(*cli.NoopProgress); !ok {
		t.Error("console logging active: progress should be a no-op")
	}

	cfg.Logging.Quiet = true
	if _, ok := runProgress(cfg).(*cli.NoopProgress); ok {
		t.Error("quiet console: progress should be reported")
	}
}

func TestApplyRunFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Source.Root = "/var/log"
	cfg.Source.RetentionDays = 30
	cfg.Archive.DestinationRoot = "/backup"

	runFlags.source = "/srv/logs"
	runFlags.retentionDays = 7
	defer func() {
		runFlags.source = ""
		runFlags.retentionDays = 0
		runCmd.Flags().Set("retention-days", "0")
	}()

	if err := runCmd.Flags().Set("retention-days", "7"); err != nil {
		t.Fatal(err)
	}

	applyRunFlags(runCmd, cfg)

	if cfg.Source.Root != "/srv/logs" {
		t.Errorf("Source.Root = %q, want %q", cfg.Source.Root, "/srv/logs")
	}
	if cfg.Source.RetentionDays != 7 {
		t.Errorf("Source.RetentionDays = %d, want 7", cfg.Source.RetentionDays)
	}
	// Flags the user did not pass leave the config alone.
	if cfg.Archive.DestinationRoot != "/backup" {
		t.Errorf("Archive.DestinationRoot = %q, want %q", cfg.Archive.DestinationRoot, "/backup")
	}
}

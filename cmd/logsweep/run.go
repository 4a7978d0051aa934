package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mchris2/logsweep/pkg/cli"
	"github.com/mchris2/logsweep/pkg/config"
	"github.com/mchris2/logsweep/pkg/pipeline"
	"github.com/mchris2/logsweep/pkg/telemetry/logging"
	"github.com/mchris2/logsweep/pkg/telemetry/metrics"
)

var runFlags struct {
	source               string
	dest                 string
	logFile              string
	retentionDays        int
	archiveRetentionDays int
	archiveOnly          bool
	reclaimCompression   bool
	workers              int
	dryRun               bool
	strict               bool
	output               string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Archive expired log files and prune expired archives",
	Long: `Run the archival pipeline once: walk the source tree, archive log
files older than the retention window, delete the originals, prune
archives past the archive retention window, and print a summary.

Examples:
  # Sweep the configured source tree
  logsweep run

  # Sweep a specific tree into a mirrored destination
  logsweep run --source /var/log/app --dest /backup/logs

  # Keep the originals
  logsweep run --archive-only

  # Preview without modifying anything
  logsweep run --dry-run

  # Parallel archival, non-zero exit on any per-file failure
  logsweep run --workers 4 --strict`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.source, "source", "", "source tree to sweep")
	runCmd.Flags().StringVar(&runFlags.dest, "dest", "", "destination root mirroring the source tree (default: sibling Archive directories)")
	runCmd.Flags().StringVar(&runFlags.logFile, "log-file", "", "run log path (default: beside the executable; \"-\" disables)")
	runCmd.Flags().IntVar(&runFlags.retentionDays, "retention-days", 0, "archive files older than this many days")
	runCmd.Flags().IntVar(&runFlags.archiveRetentionDays, "archive-retention-days", 0, "delete archives older than this many days")
	runCmd.Flags().BoolVar(&runFlags.archiveOnly, "archive-only", false, "do not delete originals after archiving")
	runCmd.Flags().BoolVar(&runFlags.reclaimCompression, "reclaim-compression", false, "remove filesystem compression before archiving")
	runCmd.Flags().IntVar(&runFlags.workers, "workers", 0, "concurrent archival workers")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "report what would happen without modifying anything")
	runCmd.Flags().BoolVar(&runFlags.strict, "strict", false, "exit non-zero when any per-file operation failed")
	runCmd.Flags().StringVarP(&runFlags.output, "output", "o", "text", "report format: text, json")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	outputFormat, err := parseOutputFormat(runFlags.output)
	if err != nil {
		return cli.NewConfigError("output", err.Error())
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyRunFlags(cmd, cfg)

	logger, err := setupLogging(cfg)
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	defer logger.Close()

	collector := metrics.NewCollector(&cfg.Metrics, nil)

	runner := pipeline.NewRunner(cfg, pipeline.Options{
		Log:       logger.Slog(),
		Collector: collector,
		Progress:  runProgress(cfg),
		DryRun:    runFlags.dryRun,
	})

	ctx := cli.SetupSignalHandler(context.Background())
	report, err := runner.Run(ctx)
	if err != nil {
		return cli.NewExitError(exitCodeFor(err), err)
	}

	if outputFormat == cli.FormatJSON {
		if err := cli.NewFormatter(outputFormat).FormatTo(os.Stdout, report); err != nil {
			return cli.NewCommandError("run", err)
		}
	}

	if cfg.Pipeline.Strict && report.Failed > 0 {
		return cli.NewExitError(cli.ExitCodeError,
			fmt.Errorf("run completed with %d per-file failure(s)", report.Failed))
	}
	return nil
}

// parseOutputFormat validates the --output flag value.
func parseOutputFormat(val string) (cli.OutputFormat, error) {
	switch val {
	case "", "text":
		return cli.FormatText, nil
	case "json":
		return cli.FormatJSON, nil
	default:
		return cli.FormatText, fmt.Errorf("unsupported output format %q (want text or json)", val)
	}
}

// runProgress picks the progress reporter for a run. The bar only makes
// sense when console logging is quiet; otherwise per-file log lines
// already show progress and the bar would garble them.
func runProgress(cfg *config.Config) cli.ProgressReporter {
	if cfg.Logging.Quiet {
		return cli.NewSimpleProgress(os.Stdout)
	}
	return &cli.NoopProgress{}
}

// loadConfig initializes the global configuration from --config or the
// standard locations.
func loadConfig() (*config.Config, error) {
	if err := config.Initialize(cfgFile); err != nil {
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	return config.GetConfig(), nil
}

// applyRunFlags overlays explicitly set run flags onto the loaded
// configuration. Flags beat env vars beat file beats defaults; only
// flags the user actually passed are applied, so a zero flag value
// never clobbers a configured one.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	if runFlags.source != "" {
		cfg.Source.Root = runFlags.source
	}
	if cmd.Flags().Changed("dest") {
		cfg.Archive.DestinationRoot = runFlags.dest
	}
	if runFlags.logFile != "" {
		cfg.Logging.File = runFlags.logFile
	}
	if cmd.Flags().Changed("retention-days") {
		cfg.Source.RetentionDays = runFlags.retentionDays
	}
	if cmd.Flags().Changed("archive-retention-days") {
		cfg.Archive.RetentionDays = runFlags.archiveRetentionDays
	}
	if cmd.Flags().Changed("archive-only") {
		cfg.Archive.ArchiveOnly = runFlags.archiveOnly
	}
	if cmd.Flags().Changed("reclaim-compression") {
		cfg.Archive.ReclaimCompression = runFlags.reclaimCompression
	}
	if cmd.Flags().Changed("workers") {
		cfg.Pipeline.Workers = runFlags.workers
	}
	if cmd.Flags().Changed("strict") {
		cfg.Pipeline.Strict = runFlags.strict
	}
}

// setupLogging builds the run logger from the configuration and installs
// it as the process default so component loggers share the log file.
func setupLogging(cfg *config.Config) (*logging.Logger, error) {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:     level,
		Format:    cfg.Logging.Format,
		FilePath:  cfg.Logging.File,
		MaxSizeMB: cfg.Logging.MaxSizeMB,
		Quiet:     cfg.Logging.Quiet,
	})
	if err != nil {
		return nil, err
	}

	if rotated := logger.RotatedTo(); rotated != "" {
		logger.Info("rotated oversized log file", "backup", rotated)
	}

	slog.SetDefault(logger.Slog())
	return logger, nil
}

// exitCodeFor maps a fatal pipeline error to its process exit code.
func exitCodeFor(err error) int {
	var phaseErr *pipeline.PhaseError
	if errors.As(err, &phaseErr) {
		switch phaseErr.Phase {
		case pipeline.PhaseValidate:
			return cli.ExitCodeValidation
		case pipeline.PhaseDiscover:
			return cli.ExitCodeEnumeration
		}
	}
	return cli.ExitCodeError
}

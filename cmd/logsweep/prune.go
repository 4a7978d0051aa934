package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mchris2/logsweep/pkg/cli"
	"github.com/mchris2/logsweep/pkg/scan"
	"github.com/mchris2/logsweep/pkg/sweep"
)

var pruneFlags struct {
	archiveRetentionDays int
	dryRun               bool
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete expired archives without running the pipeline",
	Long: `Sweep archive directories for archives older than the archive
retention window and delete them.

With a configured destination root, every directory beneath it is
swept. Without one, the source tree is walked for "Archive"
subdirectories.

Examples:
  # Sweep with the configured retention window
  logsweep prune

  # Sweep with an explicit window
  logsweep prune --archive-retention-days 30

  # Preview without deleting
  logsweep prune --dry-run`,
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)

	pruneCmd.Flags().IntVar(&pruneFlags.archiveRetentionDays, "archive-retention-days", 0, "delete archives older than this many days")
	pruneCmd.Flags().BoolVar(&pruneFlags.dryRun, "dry-run", false, "report what would be deleted without deleting")
}

func runPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("archive-retention-days") {
		cfg.Archive.RetentionDays = pruneFlags.archiveRetentionDays
	}
	if cfg.Archive.RetentionDays <= 0 {
		return cli.NewExitError(cli.ExitCodeValidation,
			fmt.Errorf("archive retention must be positive, got %d days", cfg.Archive.RetentionDays))
	}

	logger, err := setupLogging(cfg)
	if err != nil {
		return cli.NewCommandError("prune", err)
	}
	defer logger.Close()

	pruner := sweep.NewPruner(logger.Slog().With("component", "sweep"))
	pruner.DryRun = pruneFlags.dryRun

	dirs, err := pruner.DiscoverArchiveDirs(cfg.Source.Root, cfg.Archive.DestinationRoot, cfg.Archive.DirName)
	if err != nil {
		return cli.NewExitError(cli.ExitCodeEnumeration,
			fmt.Errorf("enumerate archive directories: %w", err))
	}

	cutoff := scan.CutoffFor(timeNow(), cfg.Archive.RetentionDays)
	res := pruner.Prune(dirs, cutoff)

	verb := "Pruned"
	if pruneFlags.dryRun {
		verb = "Would prune"
	}
	logger.Info(fmt.Sprintf("%s %d archive(s), %.2f MB, across %d directories (failures: %d)",
		verb, res.Deleted, float64(res.Bytes)/(1024*1024), len(dirs), res.Failed))

	if cfg.Pipeline.Strict && res.Failed > 0 {
		return cli.NewExitError(cli.ExitCodeError,
			fmt.Errorf("sweep completed with %d failure(s)", res.Failed))
	}
	return nil
}

// timeNow is swapped in tests.
var timeNow = time.Now

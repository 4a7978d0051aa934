package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mchris2/logsweep/pkg/cli"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "logsweep",
	Short: "Retention-driven log archival and cleanup",
	Long: `Logsweep is a scheduled housekeeping tool for log directories.

It archives log files older than a retention window into individual ZIP
archives, optionally reclaims filesystem-level compression before
archiving, deletes the originals, prunes archives past a second
retention window, and reports how much space was saved.

Archives land either in an "Archive" subdirectory beside each source
file, or under a configured destination root mirroring the source tree.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, mapping errors to exit codes:
// 2 for validation failures, 3 for enumeration failures, 1 otherwise.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: standard locations)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

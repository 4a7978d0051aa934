// Logsweep is a retention-driven log archival tool.
//
// It walks a directory tree, compresses log files older than a
// retention window into single-entry ZIP archives, optionally reclaims
// filesystem-level compression first, deletes the originals, prunes
// archives past a second retention window, and reports a space-usage
// summary.
//
// Usage:
//
//	# One-shot run over the configured source tree
//	logsweep run
//
//	# Archive without deleting originals
//	logsweep run --archive-only
//
//	# Preview what a run would do
//	logsweep run --dry-run
//
//	# Sweep expired archives without archiving anything
//	logsweep prune
//
//	# Check the environment before scheduling runs
//	logsweep validate
//
//	# Run unattended on a cron schedule
//	logsweep schedule --cron "0 3 * * *"
//
//	# Show version information
//	logsweep version
package main

func main() {
	Execute()
}

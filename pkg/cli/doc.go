/*
Package cli provides command-line interface utilities for logsweep.

The cli package includes typed command errors, exit-code mapping, output
formatters, progress reporters, and signal handling used by the logsweep
command.

Exit Codes:

Fatal failures map to distinguishable exit codes so schedulers and
monitoring can tell validation problems from enumeration problems:

	0  run completed
	1  command or configuration error, or strict-mode per-file failures
	2  environment validation failed
	3  source enumeration failed

Commands return an ExitError to carry the code to the process boundary:

	return cli.NewExitError(cli.ExitCodeValidation, err)

Output Formatting:

The cli package supports text and JSON output for command results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Progress Reporting:

For long-running batches, use the progress reporter:

	progress := cli.NewSimpleProgress(os.Stdout)
	progress.Start(totalFiles)
	for i, f := range files {
		// Archive f
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli

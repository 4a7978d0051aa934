// Package logging provides the logsweep run log.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - The bracket line format "[2006-01-02 15:04:05] [LEVEL] message k=v"
//   - Mirrored output to console and an append-only UTF-8 log file
//   - Size-based rotation to a timestamped backup before a run starts
//   - A JSON format option for machine consumption
//   - Configurable log levels (debug, info, warn, error)
//
// # Usage
//
//	// Create a logger writing to console and file
//	logger, err := logging.New(logging.Config{
//	    Level:     "info",
//	    Format:    "bracket",
//	    FilePath:  "/var/log/logsweep/logsweep.log",
//	    MaxSizeMB: 10,
//	})
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	// Log structured data
//	logger.Info("archived file",
//	    "path", "/var/log/app/old.log",
//	    "archive_bytes", 1234,
//	)
//
//	// Route package-level slog users through this logger
//	slog.SetDefault(logger.Slog())
//
// # Rotation
//
// When the log file exceeds MaxSizeMB at logger construction time, it is
// renamed to a timestamped backup (logsweep-20060102-150405.log) and a
// fresh log is started. Rotation never happens mid-run, so one run's
// records always land in a single file.
//
// # File Location
//
// When Config.FilePath is empty the log is written beside the executable,
// named "logsweep.log" (see DefaultPath). Pass FilePath "-" to disable the
// file entirely and log to console only.
package logging

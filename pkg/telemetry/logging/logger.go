package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LogFormat represents the output format for logs.
type LogFormat string

const (
	// FormatBracket outputs "[timestamp] [LEVEL] message k=v" lines.
	FormatBracket LogFormat = "bracket"
	// FormatJSON outputs logs in JSON format.
	FormatJSON LogFormat = "json"
)

// NoFile disables the log file when used as Config.FilePath.
const NoFile = "-"

// Config contains configuration for the Logger.
type Config struct {
	// Level is the minimum log level ("debug", "info", "warn", "error")
	Level string

	// Format is the output format ("bracket", "json")
	Format string

	// FilePath is the log file location. Empty means beside the
	// executable (see DefaultPath); NoFile ("-") disables the file.
	FilePath string

	// MaxSizeMB is the rotation threshold in megabytes. A log file
	// larger than this at construction time is renamed to a timestamped
	// backup. Zero or negative disables rotation.
	MaxSizeMB int

	// Quiet suppresses console output; records still reach the file.
	Quiet bool

	// ConsoleWriter is the console destination (defaults to os.Stdout).
	ConsoleWriter io.Writer
}

// Logger writes run records to the console and the append-only log file.
type Logger struct {
	slog      *slog.Logger
	level     slog.Level
	format    LogFormat
	file      *os.File
	path      string
	rotatedTo string
}

// New creates a new Logger with the given configuration. When the log file
// exceeds the rotation threshold it is rotated before being opened, so a
// run's records always start in a file below the size limit.
func New(cfg Config) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	format, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid log format: %w", err)
	}

	logger := &Logger{
		level:  level,
		format: format,
	}

	// Resolve and open the log file
	if cfg.FilePath != NoFile {
		path := cfg.FilePath
		if path == "" {
			path = DefaultPath()
		}

		if cfg.MaxSizeMB > 0 {
			rotated, err := rotateIfNeeded(path, int64(cfg.MaxSizeMB)*1024*1024)
			if err != nil {
				return nil, fmt.Errorf("failed to rotate log file %q: %w", path, err)
			}
			logger.rotatedTo = rotated
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %q: %w", path, err)
		}
		logger.file = f
		logger.path = path
	}

	// Assemble destinations: console first, then file
	var writers []io.Writer
	if !cfg.Quiet {
		cw := cfg.ConsoleWriter
		if cw == nil {
			cw = os.Stdout
		}
		writers = append(writers, cw)
	}
	if logger.file != nil {
		writers = append(writers, logger.file)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = NewBracketHandler(w, opts)
	}

	logger.slog = slog.New(handler)
	return logger, nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With creates a new logger with additional fields.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:      l.slog.With(args...),
		level:     l.level,
		format:    l.format,
		file:      l.file,
		path:      l.path,
		rotatedTo: l.rotatedTo,
	}
}

// Slog returns the underlying slog.Logger, suitable for slog.SetDefault
// so that component loggers built with slog.Default() share the log file.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Path returns the resolved log file path, or the empty string when the
// file is disabled.
func (l *Logger) Path() string {
	return l.path
}

// RotatedTo returns the backup name the previous log was renamed to, or
// the empty string when no rotation happened.
func (l *Logger) RotatedTo() string {
	return l.rotatedTo
}

// Close flushes and closes the log file. The logger must not be used
// afterwards.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}

// DefaultPath returns the default log file location: "logsweep.log" in the
// executable's directory, falling back to the working directory when the
// executable path cannot be determined.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "logsweep.log"
	}
	return filepath.Join(filepath.Dir(exe), "logsweep.log")
}

// parseLevel parses a log level string into slog.Level.
func parseLevel(levelStr string) (slog.Level, error) {
	switch levelStr {
	case "debug", "DEBUG":
		return slog.LevelDebug, nil
	case "info", "INFO", "":
		return slog.LevelInfo, nil
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn, nil
	case "error", "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", levelStr)
	}
}

// parseFormat parses a log format string into LogFormat.
func parseFormat(formatStr string) (LogFormat, error) {
	switch formatStr {
	case "bracket", "BRACKET", "":
		return FormatBracket, nil
	case "json", "JSON":
		return FormatJSON, nil
	default:
		return FormatBracket, fmt.Errorf("unknown log format: %s", formatStr)
	}
}

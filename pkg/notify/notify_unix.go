//go:build linux || darwin

package notify

import (
	"log/slog"
	"log/syslog"
	"os"
)

func notifyFatal(subject, message string) {
	w, err := syslog.New(syslog.LOG_ERR|syslog.LOG_DAEMON, Source)
	if err != nil {
		slog.Default().Debug("syslog notification failed", "error", err)
		// Unattended runs without a syslog daemon still get something.
		_, _ = os.Stderr.WriteString("FATAL [" + subject + "]: " + message + "\n")
		return
	}
	defer w.Close()

	if err := w.Err(subject + ": " + message); err != nil {
		slog.Default().Debug("syslog notification failed", "error", err)
	}
}

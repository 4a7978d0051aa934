//go:build windows

package notify

import (
	"log/slog"

	"golang.org/x/sys/windows/svc/eventlog"
)

const fatalEventID = 1

func notifyFatal(subject, message string) {
	// Registration fails harmlessly when the source already exists or
	// the process lacks registry rights; Open still works in the common
	// already-registered case.
	_ = eventlog.InstallAsEventCreate(Source, eventlog.Error|eventlog.Warning|eventlog.Info)

	l, err := eventlog.Open(Source)
	if err != nil {
		slog.Default().Debug("event log notification failed", "error", err)
		return
	}
	defer l.Close()

	if err := l.Error(fatalEventID, subject+": "+message); err != nil {
		slog.Default().Debug("event log notification failed", "error", err)
	}
}

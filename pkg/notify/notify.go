package notify

// Source is the name the notification appears under in the OS event
// facility (event log source on Windows, syslog tag elsewhere).
const Source = "logsweep"

// Fatal sends a single notification about a fatal failure. Errors during
// delivery are swallowed after a debug log entry.
func Fatal(subject, message string) {
	notifyFatal(subject, message)
}

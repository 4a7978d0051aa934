// Package notify delivers one-shot OS-level notifications for fatal
// pipeline failures, so unattended scheduled runs surface problems even
// when nobody reads the log. Windows uses the application event log,
// Linux and macOS use syslog, and everything else falls back to stderr.
// Delivery is best-effort: a notification failure must never mask the
// error being reported.
package notify

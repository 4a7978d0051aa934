// Package sweep handles the second retention window: archives
// themselves expire. A pruner deletes expired archives from a set of
// archive directories, a DirSet tracks which directories a run touched,
// and a cron-backed scheduler drives unattended recurring runs.
package sweep

// Package telemetry provides observability for logsweep.
//
// # Overview
//
// The telemetry package implements the run log and Prometheus metrics
// export. It provides visibility into sweep runs while keeping the
// housekeeping binary dependency-light at runtime: the log is a plain
// append-only file, and metrics are exposed either as a textfile for the
// node_exporter textfile collector (one-shot runs) or over HTTP (daemon
// mode).
//
// # Components
//
//   - logging: bracket-format run log with size-based rotation
//   - metrics: Prometheus metrics collection and export
//
// # Usage
//
//	// Build the run logger
//	logger, err := logging.New(logging.Config{
//	    Level:    "info",
//	    FilePath: "/var/log/logsweep/logsweep.log",
//	})
//
//	// Record a completed run
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	collector.RecordRun(sample)
//	collector.WriteTextfile()
package telemetry

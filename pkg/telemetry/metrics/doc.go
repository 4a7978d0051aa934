// Package metrics exposes run outcomes as Prometheus metrics.
//
// The collector owns a private registry with per-run counters (files
// archived, failed, skipped, archives pruned, bytes archived, bytes
// reclaimed) and last-run gauges (completion timestamp, duration, disk
// free space). Two export paths are supported: a textfile snapshot for
// the node_exporter textfile collector, which fits one-shot scheduled
// runs, and an HTTP handler for scrape-based collection in schedule
// mode.
package metrics

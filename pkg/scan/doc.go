// Package scan discovers files that have aged out of their retention
// window. A scanner walks the source tree once per run and returns a
// materialized candidate list: files whose extension is recognized,
// whose modification time falls strictly before the cutoff, and whose
// path passes through no archive directory. Discovery keeps no cursor
// between runs; each invocation is a fresh listing.
package scan

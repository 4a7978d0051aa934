// Package pipeline orchestrates one archival run as four ordered
// phases: validate, discover, process, sweep-and-report. A run either
// fails validation or enumeration up front (fatal, with an OS-level
// notification) or completes with a report; individual file failures
// during processing are counted and never abort the batch.
//
// The phases never re-enter each other. All run state lives in an
// explicit RunStats/RunReport pair created per run, so concurrent runs
// in a long-lived process cannot bleed counters into one another.
package pipeline

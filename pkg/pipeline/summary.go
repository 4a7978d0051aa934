package pipeline

import (
	"fmt"
	"time"
)

const (
	bytesPerMB = 1024 * 1024
	bytesPerGB = 1024 * 1024 * 1024

	timeRounding = 10 * time.Millisecond
)

// formatSize renders a byte count in MB and GB with two decimals, the
// shape operators read free-space numbers in.
func formatSize(b int64) string {
	return fmt.Sprintf("%.2f MB (%.2f GB)", float64(b)/bytesPerMB, float64(b)/bytesPerGB)
}

// Summarize renders the run report as human-readable lines. Purely
// derived from the report; callers decide where the lines go.
func Summarize(r *RunReport) []string {
	lines := make([]string, 0, 12)

	if r.DryRun {
		lines = append(lines, "dry run: no files were modified")
	}

	lines = append(lines,
		fmt.Sprintf("Archived: %d file(s), Skipped: %d, Walk errors: %d", r.Archived, r.Skipped, r.WalkErrors),
		fmt.Sprintf("Logical size: %s", formatSize(r.LogicalBytes)),
		fmt.Sprintf("On-disk size: %s", formatSize(r.OnDiskBytes)),
		fmt.Sprintf("Archived size: %s", formatSize(r.ArchivedBytes)),
		fmt.Sprintf("Space saved vs logical: %s", formatSize(r.SpaceSavedLogical())),
		fmt.Sprintf("Space saved vs on-disk: %s", formatSize(r.SpaceSavedOnDisk())),
		fmt.Sprintf("Archives pruned: %d (%s)", r.PrunedArchives, formatSize(r.PrunedBytes)),
	)

	if r.FreeKnown {
		delta := int64(r.FreeAfter) - int64(r.FreeBefore)
		lines = append(lines,
			fmt.Sprintf("Free space before: %s", formatSize(int64(r.FreeBefore))),
			fmt.Sprintf("Free space after: %s (%+.2f MB)", formatSize(int64(r.FreeAfter)), float64(delta)/bytesPerMB),
		)
	}

	lines = append(lines,
		fmt.Sprintf("Elapsed: %s", r.Duration().Round(timeRounding)),
		fmt.Sprintf("Failures: %d", r.Failed),
	)

	return lines
}

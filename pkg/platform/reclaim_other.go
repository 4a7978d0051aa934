//go:build !windows

package platform

import (
	"fmt"
	"os"
	"runtime"
)

type noopReclaimer struct{}

func newReclaimer() Reclaimer {
	return &noopReclaimer{}
}

func (r *noopReclaimer) Probe() Result {
	return Result{
		Supported: false,
		Reason:    fmt.Sprintf("filesystem compression reclaim is not available on %s", runtime.GOOS),
	}
}

func (r *noopReclaimer) Reclaim(path string) (int64, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false, fmt.Errorf("stat %q: %w", path, err)
	}
	return info.Size(), false, nil
}

func isCompressed(info os.FileInfo) bool {
	return false
}

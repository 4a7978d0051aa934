//go:build linux || darwin

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func freeSpace(path string) (uint64, uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, fmt.Errorf("statfs %q: %w", path, err)
	}
	free := uint64(stat.Bavail) * uint64(stat.Bsize)
	total := uint64(stat.Blocks) * uint64(stat.Bsize)
	return free, total, nil
}

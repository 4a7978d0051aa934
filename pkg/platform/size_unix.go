//go:build linux || darwin

package platform

import (
	"os"
	"syscall"
)

// onDiskSize derives allocation from the block count. st_blocks is
// always in 512-byte units regardless of the filesystem block size.
func onDiskSize(path string, info os.FileInfo) (int64, error) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.Size(), nil
	}
	return st.Blocks * 512, nil
}

package platform

import "os"

// OnDiskSize reports the space a file actually occupies on disk. Under
// filesystem compression or sparse allocation this differs from the
// logical size; on platforms with no better answer it falls back to the
// logical size.
func OnDiskSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return onDiskSize(path, info)
}

// OnDiskSizeInfo is OnDiskSize for callers that already hold a FileInfo,
// saving a redundant stat during directory walks.
func OnDiskSizeInfo(path string, info os.FileInfo) (int64, error) {
	return onDiskSize(path, info)
}

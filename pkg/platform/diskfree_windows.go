//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func freeSpace(path string) (uint64, uint64, error) {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, fmt.Errorf("encode path %q: %w", path, err)
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	err = windows.GetDiskFreeSpaceEx(pathp, &freeBytesAvailable, &totalBytes, &totalFreeBytes)
	if err != nil {
		return 0, 0, fmt.Errorf("disk free space for %q: %w", path, err)
	}
	return freeBytesAvailable, totalBytes, nil
}

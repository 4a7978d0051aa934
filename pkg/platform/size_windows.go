//go:build windows

package platform

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

const invalidFileSize = 0xFFFFFFFF

var (
	modkernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procGetCompressedFileSizeW = modkernel32.NewProc("GetCompressedFileSizeW")
)

// onDiskSize asks NTFS for the compressed file size, which is the real
// allocation for files carrying the compression attribute.
func onDiskSize(path string, info os.FileInfo) (int64, error) {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return info.Size(), fmt.Errorf("encode path %q: %w", path, err)
	}

	var high uint32
	low, _, callErr := procGetCompressedFileSizeW.Call(
		uintptr(unsafe.Pointer(pathp)),
		uintptr(unsafe.Pointer(&high)),
	)
	if uint32(low) == invalidFileSize {
		if errno, ok := callErr.(windows.Errno); ok && errno != 0 {
			return info.Size(), fmt.Errorf("compressed size of %q: %w", path, errno)
		}
	}
	return int64(high)<<32 | int64(uint32(low)), nil
}

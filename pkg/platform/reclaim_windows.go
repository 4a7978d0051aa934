//go:build windows

package platform

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	fsctlSetCompression     = 0x0009C040
	compressionFormatNone   = uint16(0)
	fileAttributeCompressed = 0x00000800
)

type ntfsReclaimer struct{}

func newReclaimer() Reclaimer {
	return &ntfsReclaimer{}
}

func (r *ntfsReclaimer) Probe() Result {
	return Result{Supported: true, Reason: "NTFS filesystem compression"}
}

func (r *ntfsReclaimer) Reclaim(path string) (int64, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false, fmt.Errorf("stat %q: %w", path, err)
	}
	if !isCompressed(info) {
		return info.Size(), false, nil
	}

	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return info.Size(), false, fmt.Errorf("encode path %q: %w", path, err)
	}

	handle, err := windows.CreateFile(
		pathp,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		0,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return info.Size(), false, fmt.Errorf("open %q for decompression: %w", path, err)
	}
	defer windows.CloseHandle(handle)

	format := compressionFormatNone
	var returned uint32
	err = windows.DeviceIoControl(
		handle,
		fsctlSetCompression,
		(*byte)(unsafe.Pointer(&format)),
		uint32(unsafe.Sizeof(format)),
		nil,
		0,
		&returned,
		nil,
	)
	if err != nil {
		return info.Size(), false, fmt.Errorf("decompress %q: %w", path, err)
	}

	after, err := os.Stat(path)
	if err != nil {
		return info.Size(), true, fmt.Errorf("stat %q after decompression: %w", path, err)
	}
	return after.Size(), true, nil
}

func isCompressed(info os.FileInfo) bool {
	attr, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return false
	}
	return attr.FileAttributes&fileAttributeCompressed != 0
}

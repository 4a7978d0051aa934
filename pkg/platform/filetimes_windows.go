//go:build windows

package platform

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

func captureExtra(info os.FileInfo, t *Times) {
	attr, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return
	}
	t.Creation = time.Unix(0, attr.CreationTime.Nanoseconds())
	t.Access = time.Unix(0, attr.LastAccessTime.Nanoseconds())
}

func restoreCreation(path string, t Times) error {
	if t.Creation.IsZero() {
		return nil
	}

	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	handle, err := windows.CreateFile(
		pathp,
		windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(handle)

	ctime := windows.NsecToFiletime(t.Creation.UnixNano())
	return windows.SetFileTime(handle, &ctime, nil, nil)
}

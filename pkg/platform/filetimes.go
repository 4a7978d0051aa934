package platform

import (
	"os"
	"time"
)

// Times holds a file's timestamps so they can be reapplied to the
// archive that replaces it. Creation is only meaningful on Windows;
// elsewhere it stays zero and restoring it is a no-op.
type Times struct {
	ModTime  time.Time
	Access   time.Time
	Creation time.Time
}

// CaptureTimes reads the timestamps of path. Access falls back to the
// modification time on platforms where it is not surfaced.
func CaptureTimes(path string) (Times, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Times{}, err
	}
	return CaptureTimesInfo(info), nil
}

// CaptureTimesInfo extracts timestamps from an already-fetched FileInfo.
func CaptureTimesInfo(info os.FileInfo) Times {
	t := Times{ModTime: info.ModTime(), Access: info.ModTime()}
	captureExtra(info, &t)
	return t
}

// RestoreTimes applies captured timestamps to path. Modification and
// access times apply on every platform; creation time only where the
// platform records one.
func RestoreTimes(path string, t Times) error {
	if err := os.Chtimes(path, t.Access, t.ModTime); err != nil {
		return err
	}
	return restoreCreation(path, t)
}

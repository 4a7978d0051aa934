package logging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// rotateIfNeeded renames the log file to a timestamped backup when it
// exceeds maxBytes. It returns the backup path, or the empty string when
// no rotation was needed. A missing log file is not an error.
func rotateIfNeeded(path string, maxBytes int64) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if info.Size() <= maxBytes {
		return "", nil
	}

	backup := backupName(path, time.Now())
	// Avoid clobbering an earlier backup from the same second.
	for i := 1; ; i++ {
		if _, err := os.Stat(backup); errors.Is(err, fs.ErrNotExist) {
			break
		}
		backup = fmt.Sprintf("%s.%d", backupName(path, time.Now()), i)
	}

	if err := os.Rename(path, backup); err != nil {
		return "", err
	}
	return backup, nil
}

// backupName derives the timestamped backup path for a log file:
// "logsweep.log" becomes "logsweep-20060102-150405.log" in the same
// directory.
func backupName(path string, now time.Time) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, fmt.Sprintf("%s-%s%s", stem, now.Format("20060102-150405"), ext))
}

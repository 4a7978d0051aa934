//go:build !windows

package platform

import "os"

func captureExtra(info os.FileInfo, t *Times) {}

func restoreCreation(path string, t Times) error {
	return nil
}

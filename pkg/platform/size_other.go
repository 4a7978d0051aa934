//go:build !windows && !linux && !darwin

package platform

import "os"

func onDiskSize(path string, info os.FileInfo) (int64, error) {
	return info.Size(), nil
}

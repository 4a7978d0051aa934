//go:build !windows && !linux && !darwin

package platform

func freeSpace(path string) (uint64, uint64, error) {
	return 0, 0, ErrUnsupported
}

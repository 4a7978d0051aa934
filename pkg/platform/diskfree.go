package platform

import "errors"

// ErrUnsupported indicates the capability is not available on this
// platform. Callers degrade gracefully, e.g. by omitting free-space
// lines from the run report.
var ErrUnsupported = errors.New("not supported on this platform")

// FreeSpace reports free and total bytes for the volume containing path.
// Returns ErrUnsupported where the platform offers no way to ask.
func FreeSpace(path string) (free, total uint64, err error) {
	return freeSpace(path)
}

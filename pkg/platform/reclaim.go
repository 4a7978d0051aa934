package platform

import "os"

// Result describes whether compression reclaim is available on this host.
type Result struct {
	// Supported is true when the platform can remove filesystem-level
	// compression from files.
	Supported bool
	// Reason explains the probe outcome in human-readable form.
	Reason string
}

// Reclaimer removes filesystem-level compression from a file in place,
// preserving logical content and size. Archiving an already-compressed
// file yields poor ratios, and deleting one frees less space than its
// logical size suggests, so the pipeline optionally reclaims compression
// before archival.
type Reclaimer interface {
	// Probe reports whether reclaim is possible on this platform.
	Probe() Result

	// Reclaim converts path to an uncompressed on-disk representation if
	// it currently carries filesystem compression. It returns the file's
	// logical size after the operation and whether a conversion happened.
	// Files without the compression attribute are left untouched.
	Reclaim(path string) (size int64, decompressed bool, err error)
}

// NewReclaimer returns the reclaimer for the current platform.
func NewReclaimer() Reclaimer {
	return newReclaimer()
}

// IsCompressed reports whether a file is stored in a reduced-size on-disk
// representation distinct from its logical size. Always false on
// platforms without a filesystem compression attribute.
func IsCompressed(info os.FileInfo) bool {
	return isCompressed(info)
}

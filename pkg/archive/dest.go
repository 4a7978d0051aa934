package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathEscapesRoot is returned when a source path does not resolve to
// a location inside the source root. Callers must not archive or delete
// anything when they see this error.
var ErrPathEscapesRoot = errors.New("source path escapes the source root")

// ResolveDest returns the directory that will hold the archive for
// sourcePath. With no destination root the archive goes into the
// archiveDirName subdirectory beside the source file. With a destination
// root the source file's directory relative to sourceRoot is mirrored
// beneath it.
func ResolveDest(sourcePath, sourceRoot, destRoot, archiveDirName string) (string, error) {
	dir := filepath.Dir(sourcePath)

	if destRoot == "" {
		return filepath.Join(dir, archiveDirName), nil
	}

	rel, err := filepath.Rel(sourceRoot, dir)
	if err != nil {
		return "", fmt.Errorf("relativize %q against %q: %w", dir, sourceRoot, err)
	}
	rel = filepath.Clean(rel)

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrPathEscapesRoot
	}
	if rel == "." {
		return filepath.Clean(destRoot), nil
	}
	return filepath.Join(destRoot, rel), nil
}

// EnsureDir creates dir and any missing parents. Calling it again once
// the tree exists returns nil without touching anything.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

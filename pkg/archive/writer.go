package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mchris2/logsweep/pkg/platform"
)

// Ext is the archive file extension.
const Ext = ".zip"

// Entry describes one archive produced for one source file.
type Entry struct {
	// SourcePath is the file that was archived.
	SourcePath string
	// ArchivePath is the final archive location.
	ArchivePath string
	// ArchiveSize is the archive's size in bytes.
	ArchiveSize int64
}

// ArchivePath returns the final archive path for sourcePath inside
// destDir: the source base name with its extension replaced by Ext.
func ArchivePath(sourcePath, destDir string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(destDir, stem+Ext)
}

// Write compresses sourcePath into a single-entry ZIP in destDir,
// overwriting any archive already at that path. The entry is named by
// the source's base name and carries its modification time; after the
// rename the source's timestamps are copied onto the archive file
// itself. destDir must already exist.
func Write(sourcePath, destDir string, times platform.Times) (Entry, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return Entry{}, fmt.Errorf("open source %q: %w", sourcePath, err)
	}
	defer src.Close()

	finalPath := ArchivePath(sourcePath, destDir)

	tmp, err := os.CreateTemp(destDir, ".logsweep-*"+Ext)
	if err != nil {
		return Entry{}, fmt.Errorf("create temp archive in %q: %w", destDir, err)
	}
	tmpPath := tmp.Name()

	if err := writeZip(tmp, src, filepath.Base(sourcePath), times); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return Entry{}, fmt.Errorf("write archive for %q: %w", sourcePath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return Entry{}, fmt.Errorf("close temp archive %q: %w", tmpPath, err)
	}

	if err := renameOverwrite(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return Entry{}, fmt.Errorf("finalize archive %q: %w", finalPath, err)
	}

	// The archive inherits the source's age so the retention sweep
	// measures log age, not run time.
	if err := platform.RestoreTimes(finalPath, times); err != nil {
		return Entry{}, fmt.Errorf("restore timestamps on %q: %w", finalPath, err)
	}

	info, err := os.Stat(finalPath)
	if err != nil {
		return Entry{}, fmt.Errorf("stat archive %q: %w", finalPath, err)
	}

	return Entry{
		SourcePath:  sourcePath,
		ArchivePath: finalPath,
		ArchiveSize: info.Size(),
	}, nil
}

func writeZip(dst *os.File, src io.Reader, entryName string, times platform.Times) error {
	zw := zip.NewWriter(dst)

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     entryName,
		Method:   zip.Deflate,
		Modified: times.ModTime,
	})
	if err != nil {
		zw.Close()
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return dst.Sync()
}

// renameOverwrite renames oldPath over newPath. Some filesystems refuse
// to replace an existing file in one step; those get a remove-then-rename
// fallback.
func renameOverwrite(oldPath, newPath string) error {
	err := os.Rename(oldPath, newPath)
	if err == nil {
		return nil
	}
	if _, statErr := os.Stat(newPath); statErr == nil {
		if rmErr := os.Remove(newPath); rmErr == nil {
			return os.Rename(oldPath, newPath)
		}
	}
	return err
}

// Ratio is the compression ratio of an archive against the original
// logical size, measured before any filesystem-compression reclaim.
func Ratio(archiveSize, logicalSize int64) float64 {
	if logicalSize <= 0 {
		return 0
	}
	return float64(archiveSize) / float64(logicalSize)
}

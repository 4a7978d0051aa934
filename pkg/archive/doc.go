// Package archive turns individual source files into single-entry ZIP
// archives and resolves where those archives live.
//
// Destination resolution has two modes. Without a global destination
// root, each file's archive lands in an archive subdirectory beside it.
// With one, the source tree is mirrored beneath the destination root, so
// R/a/b/c.log becomes D/a/b/c.zip.
//
// Writes go through a temporary file renamed over the final path:
// existing archives are overwritten, never appended, and a reader can
// never observe a partial archive. The archive inherits the source
// file's timestamps so its age reflects the log's age, which is what
// the retention sweep keys on.
package archive

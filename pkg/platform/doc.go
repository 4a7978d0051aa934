// Package platform isolates the filesystem capabilities that differ by
// operating system so the archival pipeline stays platform-neutral.
//
// Four capabilities live here:
//
//   - Reclaimer: removing filesystem-level compression from a file before
//     it is archived. This is an NTFS concept; on other platforms Probe
//     reports unsupported and the feature degrades to a no-op.
//   - OnDiskSize: the space a file actually occupies on disk, which
//     differs from its logical size under filesystem compression or
//     sparse allocation.
//   - FreeSpace: free and total bytes on the volume containing a path.
//   - CaptureTimes/RestoreTimes: file timestamps, including the Windows
//     creation time, so an archive can inherit the age of the file it
//     replaced.
//
// Each capability has a portable entry point backed by per-platform
// implementations selected with build tags.
package platform

//go:build linux || darwin || freebsd

package reporters

import "golang.org/x/sys/unix"

// freeDiskSpace returns the bytes available to unprivileged users on the
// file system that holds path.
func freeDiskSpace(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return uint64(st.Bavail) * uint64(st.Bsize), nil //nolint:gosec,unconvert // field types differ per platform
}

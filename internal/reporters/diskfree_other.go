//go:build !linux && !darwin && !freebsd

package reporters

import "errors"

func freeDiskSpace(string) (uint64, error) {
	return 0, errors.New("free disk space is not supported on this platform")
}

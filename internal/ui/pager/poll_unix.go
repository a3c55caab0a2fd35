//go:build unix

package pager

import (
	"time"

	"golang.org/x/sys/unix"
)

// waitReadable blocks until fd has input or timeout elapses.
func waitReadable(fd int, timeout time.Duration) (bool, error) {
	var readfds unix.FdSet
	readfds.Set(fd)
	tv := unix.NsecToTimeval(timeout.Nanoseconds())

	n, err := unix.Select(fd+1, &readfds, nil, nil, &tv)
	if err == unix.EINTR {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n > 0 && readfds.IsSet(fd), nil
}

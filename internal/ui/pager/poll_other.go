//go:build !unix

package pager

import (
	"errors"
	"time"
)

// The ANSI backend needs select(2); other platforms use the tcell backend.
func waitReadable(fd int, timeout time.Duration) (bool, error) {
	return false, errors.New("polling a descriptor is not supported on this platform")
}

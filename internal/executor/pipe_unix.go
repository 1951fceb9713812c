//go:build !windows

package executor

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isPlatformBrokenPipe reports EPIPE from a write to a closed pipe.
func isPlatformBrokenPipe(err error) bool {
	return errors.Is(err, unix.EPIPE)
}

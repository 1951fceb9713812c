//go:build windows

package executor

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// isPlatformBrokenPipe reports the errors Windows returns when writing to a
// pipe whose reader has exited.
func isPlatformBrokenPipe(err error) bool {
	return errors.Is(err, windows.ERROR_BROKEN_PIPE) ||
		errors.Is(err, windows.ERROR_NO_DATA) ||
		errors.Is(err, syscall.EPIPE)
}

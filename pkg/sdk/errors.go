package sdk

import "errors"

var (
	// ErrUsage is returned when a package command gets the wrong number of arguments.
	ErrUsage = errors.New("usage")

	// ErrUnknownFlag is returned for a flag other than -i or -u.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrInvalidIndex is returned when the package index is not a number.
	ErrInvalidIndex = errors.New("invalid package index")

	// ErrIndexOutOfBounds is returned when the package index is not in the last listing.
	ErrIndexOutOfBounds = errors.New("package index out of bounds")

	// ErrContractViolation is returned when Execute is called with arguments
	// that Validate would have rejected.
	ErrContractViolation = errors.New("execute called with unvalidated arguments")

	// ErrListFailed is returned when sdkmanager --list exits with an error.
	ErrListFailed = errors.New("package listing failed")
)

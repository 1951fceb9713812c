package cli

import "errors"

var (
	// ErrHistoryDisabled is returned when history is turned off in the config.
	ErrHistoryDisabled = errors.New("history is disabled in the configuration")

	// ErrInvalidCount is returned when an entry count is not a positive number.
	ErrInvalidCount = errors.New("invalid count")

	// ErrNothingToRollback is returned when history holds no successful
	// install or uninstall.
	ErrNothingToRollback = errors.New("no install or uninstall to roll back")

	// ErrAborted is returned when the user declines a confirmation.
	ErrAborted = errors.New("operation aborted by user")
)

package script

import "errors"

// Errors for script execution.
var (
	// ErrRunnerClosed is returned when running against a closed Runner.
	ErrRunnerClosed = errors.New("script runner is closed")
)

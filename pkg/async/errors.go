package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the computation has not
	// completed within the given duration.
	ErrTimeout = errors.New("async: operation timed out waiting for future completion")
)

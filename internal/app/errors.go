package app

import "errors"

// The shell knows two failure kinds, both fatal during startup. There
// is no retry or recovery; the process exits nonzero.
var (
	// ErrRuntimeUnavailable means no display/window-system session
	// could be reached.
	ErrRuntimeUnavailable = errors.New("gui runtime unavailable")

	// ErrResourceExhaustion means the runtime failed to allocate the
	// window or its supporting objects.
	ErrResourceExhaustion = errors.New("gui resource exhaustion")
)

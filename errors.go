package rxreg

import "errors"

// Registry and lifecycle errors.
var (
	// ErrNoMemory indicates resource exhaustion while registering a
	// compiled pattern. The pattern compiled successfully; the failure
	// handler closes the matcher before surfacing this error.
	ErrNoMemory = errors.New("no memory")

	// ErrRegistryClosed indicates a registration attempt after the startup
	// sweep closed the registry. Registration is only legal while the
	// configuration phase is collecting patterns.
	ErrRegistryClosed = errors.New("registry closed to registration")
)

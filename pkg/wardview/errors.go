package wardview

import (
	"errors"
	"fmt"
)

// SetupError represents a failure while bringing wardview up (reading the
// configuration, loading translations, building the navigator). These errors
// are fatal for the shell; the host should report them and exit.
type SetupError struct {
	Op  string // Operation that failed (e.g., "load_config", "load_locale")
	Err error  // Underlying error
}

func (e *SetupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wardview: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("wardview: %s", e.Op)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// NewSetupError creates a new setup error.
func NewSetupError(op string, err error) *SetupError {
	return &SetupError{Op: op, Err: err}
}

// IsSetupError checks if an error is a setup error.
func IsSetupError(err error) bool {
	var setupErr *SetupError
	return errors.As(err, &setupErr)
}

package navigation

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotRegistered indicates no factory is registered for a handle.
	ErrNotRegistered = errors.New("view-model not registered")

	// ErrNilViewModel indicates a factory returned a nil view-model without an error.
	ErrNilViewModel = errors.New("factory returned nil view-model")

	// ErrAlreadyShown indicates the resolver returned an instance that is already
	// active or in the history, which happens with singleton registrations.
	ErrAlreadyShown = errors.New("view-model is already active or in history")

	// ErrSharedReceiver indicates a singleton registration built a ParameterReceiver.
	// Sharing it would run Initialize more than once on the same instance.
	ErrSharedReceiver = errors.New("singleton view-model must not be a parameter receiver")

	// ErrNoActiveViewModel is the panic value of Active when nothing has been
	// navigated to yet. Reaching it is a programming error.
	ErrNoActiveViewModel = errors.New("no active view-model")
)

// ResolutionError reports that no view-model could be produced for a handle,
// either because the handle is unknown or because its factory failed.
type ResolutionError struct {
	Handle Handle // Handle that was being resolved
	Err    error  // Underlying error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("navigation: resolve %q: %v", string(e.Handle), e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// InitializationError reports that a freshly resolved view-model rejected the
// navigation parameter. The instance is discarded.
type InitializationError struct {
	Handle Handle // Handle of the view-model that failed
	Err    error  // Underlying error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("navigation: initialize %q: %v", string(e.Handle), e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// IsResolutionError checks if an error is a resolution error.
func IsResolutionError(err error) bool {
	var resErr *ResolutionError
	return errors.As(err, &resErr)
}

// IsInitializationError checks if an error is an initialization error.
func IsInitializationError(err error) bool {
	var initErr *InitializationError
	return errors.As(err, &initErr)
}

// IsNotRegistered checks if an error means the handle had no registration.
func IsNotRegistered(err error) bool {
	return errors.Is(err, ErrNotRegistered)
}

package navigation

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Navigator is the single authority for which view-model is shown and how the user
// got there. It starts Empty; the first successful navigation makes it Active and it
// stays Active from then on.
//
// The zero value is not usable; create one with New.
type Navigator struct {
	resolver Resolver
	logger   *slog.Logger

	active  *entry
	history history
	changed signal

	revision         atomic.Uint64
	historyWarnDepth int
}

// New creates a Navigator that resolves view-models through resolver.
func New(resolver Resolver) *Navigator {
	return &Navigator{
		resolver: resolver,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used for navigation events.
func (n *Navigator) WithLogger(logger *slog.Logger) *Navigator {
	if logger != nil {
		n.logger = logger
	}
	return n
}

// WithHistoryWarning logs a warning each time the history depth reaches a multiple
// of depth. History is never trimmed. A depth of zero disables the warning.
func (n *Navigator) WithHistoryWarning(depth int) *Navigator {
	n.historyWarnDepth = depth
	return n
}

// NavigateTo resolves the view-model for handle and makes it active.
// On failure the returned error is a *ResolutionError and nothing changes.
func (n *Navigator) NavigateTo(handle Handle) error {
	vm, err := n.resolve(handle)
	if err != nil {
		return err
	}
	n.install(handle, vm)
	return nil
}

// NavigateToWithParameter is NavigateTo for view-models that take a payload.
// If the resolved view-model implements ParameterReceiver, Initialize is called
// with parameter before it becomes active. A failing Initialize is returned as a
// *InitializationError, the instance is discarded and nothing changes.
func (n *Navigator) NavigateToWithParameter(handle Handle, parameter any) error {
	vm, err := n.resolve(handle)
	if err != nil {
		return err
	}

	if receiver, ok := vm.(ParameterReceiver); ok {
		if err := initialize(receiver, parameter); err != nil {
			initErr := &InitializationError{Handle: handle, Err: err}
			n.logger.Warn("Navigation failed", "handle", string(handle), "error", initErr)
			return initErr
		}
	}

	n.install(handle, vm)
	return nil
}

// NavigateToViewModel makes an already built view-model active under handle.
// Hosts that construct view-models asynchronously resolve them first and hand
// them over here. Initialize is not called.
func (n *Navigator) NavigateToViewModel(handle Handle, vm ViewModel) error {
	if vm == nil {
		return &ResolutionError{Handle: handle, Err: ErrNilViewModel}
	}
	if n.isShown(vm) {
		return &ResolutionError{Handle: handle, Err: ErrAlreadyShown}
	}
	n.install(handle, vm)
	return nil
}

// GoBack makes the most recent history entry active again and reports whether
// anything changed. The view-model it replaces is dropped, there is no forward
// history. With an empty history GoBack does nothing and emits no change.
func (n *Navigator) GoBack() bool {
	previous := n.history.pop()
	if previous == nil {
		return false
	}

	dropped := n.active
	n.active = previous
	n.revision.Inc()

	n.logger.Debug("Navigated back",
		"handle", string(previous.handle),
		"instance_id", previous.id.String(),
		"dropped", string(dropped.handle),
		"depth", n.history.len(),
	)

	n.changed.emit()
	return true
}

// Active returns the active view-model.
// It panics with ErrNoActiveViewModel if nothing has been navigated to yet;
// check IsEmpty first when that is possible.
func (n *Navigator) Active() ViewModel {
	if n.active == nil {
		panic(ErrNoActiveViewModel)
	}
	return n.active.vm
}

// ActiveHandle returns the handle of the active view-model, or "" when Empty.
func (n *Navigator) ActiveHandle() Handle {
	if n.active == nil {
		return ""
	}
	return n.active.handle
}

// ActiveID returns the instance id of the active entry, or uuid.Nil when Empty.
// Every navigation gets a fresh id; going back restores the id of the entry it
// returns to, so equal ids mean the same instance.
func (n *Navigator) ActiveID() uuid.UUID {
	if n.active == nil {
		return uuid.Nil
	}
	return n.active.id
}

// IsEmpty returns true until the first successful navigation.
func (n *Navigator) IsEmpty() bool {
	return n.active == nil
}

// CanGoBack returns true if GoBack would change the active view-model.
func (n *Navigator) CanGoBack() bool {
	return !n.history.isEmpty()
}

// Depth returns the number of view-models in the history.
func (n *Navigator) Depth() int {
	return n.history.len()
}

// History returns the previously active view-models, oldest first.
// The slice is a copy; the view-models are not.
func (n *Navigator) History() []ViewModel {
	return n.history.viewModels()
}

// HistoryHandles returns the handles of the history entries, oldest first.
func (n *Navigator) HistoryHandles() []Handle {
	return n.history.handles()
}

// Revision counts committed changes of the active view-model. Unlike the rest of
// the Navigator it is safe to read from any goroutine, which lets a render loop
// poll for changes.
func (n *Navigator) Revision() uint64 {
	return n.revision.Load()
}

// Subscribe registers fn to be called after every change of the active view-model.
// Handlers read the new state through Active. The returned function unsubscribes;
// it is safe to call from inside a handler and more than once.
func (n *Navigator) Subscribe(fn func()) (unsubscribe func()) {
	return n.changed.subscribe(fn)
}

func (n *Navigator) resolve(handle Handle) (ViewModel, error) {
	vm, err := n.resolver.Resolve(handle)
	if err == nil && vm == nil {
		err = ErrNilViewModel
	}
	if err == nil && n.isShown(vm) {
		err = ErrAlreadyShown
	}
	if err != nil {
		if !IsResolutionError(err) {
			err = &ResolutionError{Handle: handle, Err: err}
		}
		n.logger.Warn("Navigation failed", "handle", string(handle), "error", err)
		return nil, err
	}
	return vm, nil
}

// isShown reports whether vm is the active view-model or sits in the history.
// Only pointers to sized values carry identity. Pointers to zero-size values may
// all share one address, so they are never considered shown.
func (n *Navigator) isShown(vm ViewModel) bool {
	t := reflect.TypeOf(vm)
	if t.Kind() != reflect.Pointer || t.Elem().Size() == 0 {
		return false
	}
	if n.active != nil && n.active.vm == vm {
		return true
	}
	for _, e := range n.history.entries {
		if e.vm == vm {
			return true
		}
	}
	return false
}

// install commits a navigation and then notifies subscribers.
func (n *Navigator) install(handle Handle, vm ViewModel) {
	next := newEntry(handle, vm)

	if n.active != nil {
		n.history.push(n.active)
	}
	n.active = next
	n.revision.Inc()

	n.logger.Debug("Navigated",
		"handle", string(handle),
		"instance_id", next.id.String(),
		"depth", n.history.len(),
	)

	if n.historyWarnDepth > 0 && n.history.len() > 0 && n.history.len()%n.historyWarnDepth == 0 {
		n.logger.Warn("Navigation history is growing",
			"depth", n.history.len(),
			"oldest", string(n.history.entries[0].handle),
		)
	}

	n.changed.emit()
}

func initialize(receiver ParameterReceiver, parameter any) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("initialize panicked: %v", p)
		}
	}()
	return receiver.Initialize(parameter)
}

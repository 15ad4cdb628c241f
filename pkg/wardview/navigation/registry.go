package navigation

import (
	"fmt"
	"sort"
)

// Handle is a stable identifier for a navigable view-model role.
// Applications should define their own Handle constants.
//
// Example:
//
//	const (
//	    Dashboard   Handle = "Dashboard"
//	    PatientList Handle = "PatientList"
//	)
type Handle string

// ViewModel is whatever gets displayed. It has no required methods; use pointer
// types so that restoring from history keeps the instance identity.
type ViewModel interface{}

// ParameterReceiver is implemented by view-models that accept a payload when they
// are navigated to. Initialize is called once, before the view-model becomes active.
// Returning an error cancels the navigation.
type ParameterReceiver interface {
	Initialize(parameter any) error
}

// Factory builds a view-model for a handle.
type Factory func() (ViewModel, error)

// Resolver produces view-models for handles.
// Failures are reported as *ResolutionError. A ParameterReceiver must be a fresh
// instance on every call, since Initialize runs once per instance.
type Resolver interface {
	Resolve(handle Handle) (ViewModel, error)
}

type lifetime int

const (
	lifetimeTransient lifetime = iota
	lifetimeSingleton
)

type registration struct {
	factory  Factory
	lifetime lifetime
	instance ViewModel
}

// Registry is a Resolver backed by a map of handles to factories.
// Whether a handle yields a fresh instance or a shared one is decided at
// registration time and is invisible to the Navigator.
type Registry struct {
	factories map[Handle]*registration
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[Handle]*registration),
	}
}

// Register adds a transient view-model: every resolution calls the factory.
// Registering a handle again replaces the previous factory.
func (r *Registry) Register(handle Handle, factory Factory) *Registry {
	r.factories[handle] = &registration{factory: factory, lifetime: lifetimeTransient}
	return r
}

// RegisterSingleton adds a view-model that is built on first resolution and shared
// afterwards. A failed construction is not cached. The view-model must not be a
// ParameterReceiver; resolving one fails with ErrSharedReceiver.
func (r *Registry) RegisterSingleton(handle Handle, factory Factory) *Registry {
	r.factories[handle] = &registration{factory: factory, lifetime: lifetimeSingleton}
	return r
}

// IsRegistered reports whether a factory exists for the handle.
func (r *Registry) IsRegistered(handle Handle) bool {
	_, ok := r.factories[handle]
	return ok
}

// Handles returns the registered handles in sorted order.
func (r *Registry) Handles() []Handle {
	handles := make([]Handle, 0, len(r.factories))
	for h := range r.factories {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}

// Resolve returns a view-model for the handle.
func (r *Registry) Resolve(handle Handle) (ViewModel, error) {
	reg, ok := r.factories[handle]
	if !ok {
		return nil, &ResolutionError{Handle: handle, Err: ErrNotRegistered}
	}

	if reg.lifetime == lifetimeSingleton && reg.instance != nil {
		return reg.instance, nil
	}

	vm, err := build(reg.factory)
	if err != nil {
		return nil, &ResolutionError{Handle: handle, Err: err}
	}

	if reg.lifetime == lifetimeSingleton {
		if _, ok := vm.(ParameterReceiver); ok {
			return nil, &ResolutionError{Handle: handle, Err: ErrSharedReceiver}
		}
		reg.instance = vm
	}
	return vm, nil
}

func build(factory Factory) (vm ViewModel, err error) {
	defer func() {
		if p := recover(); p != nil {
			vm = nil
			err = fmt.Errorf("factory panicked: %v", p)
		}
	}()

	vm, err = factory()
	if err != nil {
		return nil, err
	}
	if vm == nil {
		return nil, ErrNilViewModel
	}
	return vm, nil
}

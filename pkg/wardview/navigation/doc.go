// Package navigation provides view-model navigation with back history.
//
// A Navigator owns the active view-model and the chain of view-models that were
// active before it. View-models are produced by a Resolver, usually a Registry that
// maps each Handle to a factory. Going back restores the previous instance itself,
// with whatever state it accumulated, rather than building a new one.
//
// # Basic Usage
//
//	// Define handles as typed constants
//	const (
//	    PatientList    navigation.Handle = "PatientList"
//	    PatientDetails navigation.Handle = "PatientDetails"
//	)
//
//	reg := navigation.NewRegistry()
//	reg.Register(PatientList, func() (navigation.ViewModel, error) {
//	    return &PatientListModel{}, nil
//	})
//	reg.Register(PatientDetails, func() (navigation.ViewModel, error) {
//	    return &PatientDetailsModel{}, nil
//	})
//
//	nav := navigation.New(reg)
//	unsubscribe := nav.Subscribe(func() {
//	    render(nav.Active())
//	})
//	defer unsubscribe()
//
//	_ = nav.NavigateTo(PatientList)
//	_ = nav.NavigateToWithParameter(PatientDetails, PatientRef{ID: 2})
//	nav.GoBack() // the same *PatientListModel is active again
//
// # Parameters
//
// A view-model that implements ParameterReceiver gets Initialize called exactly once,
// before it becomes active, when it is reached through NavigateToWithParameter. It is
// never called again when the instance is restored from history.
//
// # Failures
//
// A navigation that fails to resolve returns a *ResolutionError and one whose
// Initialize fails returns an *InitializationError. Either way the active view-model
// and the history are left exactly as they were.
//
// # Threading
//
// A Navigator is meant to be driven from a single UI goroutine and does no locking.
// Handlers may navigate from inside a change notification: the new change is committed
// right away and its notification is delivered once the current one has reached every
// subscriber. Each subscriber gets one call per change and always reads committed
// state, but a later subscriber may find that an earlier one has already moved on, so
// it can miss an intermediate view.
package navigation

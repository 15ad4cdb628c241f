package navigation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryTransientBuildsEachTime(t *testing.T) {
	reg := NewRegistry().Register(testPatientList, func() (ViewModel, error) {
		return &plainModel{}, nil
	})

	first, err := reg.Resolve(testPatientList)
	require.NoError(t, err)
	second, err := reg.Resolve(testPatientList)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestRegistrySingletonIsShared(t *testing.T) {
	builds := 0
	reg := NewRegistry().RegisterSingleton(testDashboard, func() (ViewModel, error) {
		builds++
		return &plainModel{}, nil
	})

	first, err := reg.Resolve(testDashboard)
	require.NoError(t, err)
	second, err := reg.Resolve(testDashboard)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)
}

func TestRegistrySingletonFailureIsNotCached(t *testing.T) {
	attempts := 0
	reg := NewRegistry().RegisterSingleton(testDashboard, func() (ViewModel, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("store not ready")
		}
		return &plainModel{}, nil
	})

	_, err := reg.Resolve(testDashboard)
	require.Error(t, err)

	vm, err := reg.Resolve(testDashboard)
	require.NoError(t, err)
	assert.NotNil(t, vm)
	assert.Equal(t, 2, attempts)
}

func TestRegistryResolveErrors(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry().
		Register("Error", func() (ViewModel, error) { return nil, boom }).
		Register("Nil", func() (ViewModel, error) { return nil, nil }).
		Register("Panic", func() (ViewModel, error) { panic("nope") })

	tests := []struct {
		handle Handle
		target error
	}{
		{handle: "Missing", target: ErrNotRegistered},
		{handle: "Error", target: boom},
		{handle: "Nil", target: ErrNilViewModel},
		{handle: "Panic", target: nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.handle), func(t *testing.T) {
			vm, err := reg.Resolve(tt.handle)

			assert.Nil(t, vm)
			var resErr *ResolutionError
			require.ErrorAs(t, err, &resErr)
			assert.Equal(t, tt.handle, resErr.Handle)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestRegistryReRegisterReplaces(t *testing.T) {
	replacement := &plainModel{name: "v2"}
	reg := NewRegistry().
		Register(testDashboard, func() (ViewModel, error) { return &plainModel{name: "v1"}, nil }).
		Register(testDashboard, func() (ViewModel, error) { return replacement, nil })

	vm, err := reg.Resolve(testDashboard)
	require.NoError(t, err)
	assert.Same(t, replacement, vm)
}

func TestRegistryHandles(t *testing.T) {
	reg, _ := newTestRegistry()

	assert.Equal(t, []Handle{testDashboard, testDoctors, testPatientDetails, testPatientList}, reg.Handles())
	assert.True(t, reg.IsRegistered(testDashboard))
	assert.False(t, reg.IsRegistered("Billing"))
}

func TestRegistrySingletonRejectsReceiver(t *testing.T) {
	builds := 0
	reg := NewRegistry().RegisterSingleton("Shared", func() (ViewModel, error) {
		builds++
		return &receiverModel{rejectNil: true}, nil
	})
	nav := New(reg)

	err := nav.NavigateToWithParameter("Shared", nil)
	require.ErrorIs(t, err, ErrSharedReceiver)
	assert.True(t, IsResolutionError(err))

	err = nav.NavigateToWithParameter("Shared", 1)
	require.ErrorIs(t, err, ErrSharedReceiver)
	assert.True(t, nav.IsEmpty())
	assert.Equal(t, 2, builds, "a rejected instance is never cached")
}

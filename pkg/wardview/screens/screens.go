// Package screens contains the view-models of the hospital desktop client.
//
// Each view-model is a list of MenuItem rows with a cursor. Rows that carry a
// Target open another view; the shell does the navigating. Detail screens take
// their subject as a navigation parameter (PatientRef, AppointmentRef or a bare
// int id) through navigation.ParameterReceiver.
package screens

import (
	"errors"
	"fmt"

	"github.com/wardview/wardview/pkg/wardview/navigation"
	"github.com/wardview/wardview/pkg/wardview/records"
)

// View handles.
const (
	Dashboard          navigation.Handle = "Dashboard"
	PatientList        navigation.Handle = "PatientList"
	PatientDetails     navigation.Handle = "PatientDetails"
	DoctorList         navigation.Handle = "DoctorList"
	AppointmentList    navigation.Handle = "AppointmentList"
	AppointmentDetails navigation.Handle = "AppointmentDetails"
	Billing            navigation.Handle = "Billing"
	MedicalRecords     navigation.Handle = "MedicalRecords"
)

const dateLayout = "2006-01-02"

// ErrBadParameter is returned by Initialize when the parameter has the wrong type.
var ErrBadParameter = errors.New("unexpected navigation parameter")

// Screen is what the shell needs from a view-model to draw and drive it.
type Screen interface {
	Heading() string
	Items() []MenuItem
	Selected() int
	Move(delta int)
	Current() (MenuItem, bool)
}

// PatientRef identifies a patient as a navigation parameter.
type PatientRef struct {
	ID int
}

// AppointmentRef identifies an appointment as a navigation parameter.
type AppointmentRef struct {
	ID int
}

func patientID(parameter any) (int, error) {
	switch p := parameter.(type) {
	case PatientRef:
		return p.ID, nil
	case *PatientRef:
		if p != nil {
			return p.ID, nil
		}
	case int:
		return p, nil
	}
	return 0, fmt.Errorf("%w: want a patient, got %T", ErrBadParameter, parameter)
}

func appointmentID(parameter any) (int, error) {
	switch p := parameter.(type) {
	case AppointmentRef:
		return p.ID, nil
	case *AppointmentRef:
		if p != nil {
			return p.ID, nil
		}
	case int:
		return p, nil
	}
	return 0, fmt.Errorf("%w: want an appointment, got %T", ErrBadParameter, parameter)
}

// Register adds every screen to reg. The dashboard is shared, the other screens
// are built fresh for each navigation.
func Register(reg *navigation.Registry, store records.Store) *navigation.Registry {
	reg.RegisterSingleton(Dashboard, func() (navigation.ViewModel, error) {
		return NewDashboard(), nil
	})
	reg.Register(PatientList, func() (navigation.ViewModel, error) {
		return NewPatientList(store)
	})
	reg.Register(PatientDetails, func() (navigation.ViewModel, error) {
		return NewPatientDetails(store), nil
	})
	reg.Register(DoctorList, func() (navigation.ViewModel, error) {
		return NewDoctorList(store)
	})
	reg.Register(AppointmentList, func() (navigation.ViewModel, error) {
		return NewAppointmentList(store)
	})
	reg.Register(AppointmentDetails, func() (navigation.ViewModel, error) {
		return NewAppointmentDetails(store), nil
	})
	reg.Register(Billing, func() (navigation.ViewModel, error) {
		return NewBilling(store)
	})
	reg.Register(MedicalRecords, func() (navigation.ViewModel, error) {
		return NewMedicalRecords(store), nil
	})
	return reg
}

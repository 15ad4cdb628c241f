package screens

import (
	"errors"
	"fmt"

	"github.com/wardview/wardview/pkg/wardview/records"
)

// AppointmentListModel lists appointments, all of them or one patient's when a
// patient is passed as the navigation parameter.
type AppointmentListModel struct {
	list
	store records.Store
}

// NewAppointmentList loads every appointment.
func NewAppointmentList(store records.Store) (*AppointmentListModel, error) {
	appts, err := store.Appointments()
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	m := &AppointmentListModel{store: store}
	m.setItems(m.rows(appts))
	return m, nil
}

// Initialize narrows the list to one patient. A nil parameter keeps every appointment.
func (m *AppointmentListModel) Initialize(parameter any) error {
	if parameter == nil {
		return nil
	}
	id, err := patientID(parameter)
	if err != nil {
		return err
	}
	p, err := m.store.Patient(id)
	if err != nil {
		return err
	}
	appts, err := m.store.AppointmentsForPatient(id)
	if err != nil {
		return fmt.Errorf("load appointments for patient %d: %w", id, err)
	}

	m.heading = p.FullName()
	m.setItems(m.rows(appts))
	return nil
}

func (m *AppointmentListModel) rows(appts []records.Appointment) []MenuItem {
	items := make([]MenuItem, 0, len(appts))
	for _, a := range appts {
		items = append(items, MenuItem{
			Text: fmt.Sprintf("%s  %s  %s  [%s]",
				a.At.Format("2006-01-02 15:04"), patientName(m.store, a.PatientID), a.Reason, a.Status),
			Target:    AppointmentDetails,
			Parameter: AppointmentRef{ID: a.ID},
		})
	}
	return items
}

// AppointmentDetailsModel shows one appointment. Its patient row opens the
// patient's details.
type AppointmentDetailsModel struct {
	list
	store       records.Store
	appointment *records.Appointment
}

// NewAppointmentDetails returns an empty details screen; Initialize fills it.
func NewAppointmentDetails(store records.Store) *AppointmentDetailsModel {
	return &AppointmentDetailsModel{store: store}
}

// Appointment returns the appointment on display, nil before Initialize.
func (m *AppointmentDetailsModel) Appointment() *records.Appointment {
	return m.appointment
}

// Initialize loads the appointment given as an AppointmentRef or id.
func (m *AppointmentDetailsModel) Initialize(parameter any) error {
	id, err := appointmentID(parameter)
	if err != nil {
		return err
	}
	a, err := m.store.Appointment(id)
	if err != nil {
		return err
	}

	m.appointment = &a
	m.heading = fmt.Sprintf("%s  %s", a.At.Format("2006-01-02 15:04"), a.Reason)
	m.setItems([]MenuItem{
		{Text: "Patient: " + patientName(m.store, a.PatientID), Target: PatientDetails, Parameter: PatientRef{ID: a.PatientID}},
		{Text: "Doctor: " + doctorName(m.store, a.DoctorID)},
		{Text: "Status: " + a.Status.String()},
	})
	return nil
}

func patientName(store records.Store, id int) string {
	p, err := store.Patient(id)
	if errors.Is(err, records.ErrNotFound) {
		return fmt.Sprintf("patient #%d", id)
	}
	if err != nil {
		return "?"
	}
	return p.FullName()
}

func doctorName(store records.Store, id int) string {
	d, err := store.Doctor(id)
	if errors.Is(err, records.ErrNotFound) {
		return fmt.Sprintf("doctor #%d", id)
	}
	if err != nil {
		return "?"
	}
	return d.FullName()
}

package screens

import (
	"fmt"

	"github.com/wardview/wardview/pkg/wardview/records"
)

// PatientListModel lists every patient; choosing one opens its details.
type PatientListModel struct {
	list
}

// NewPatientList loads every patient.
func NewPatientList(store records.Store) (*PatientListModel, error) {
	patients, err := store.Patients()
	if err != nil {
		return nil, fmt.Errorf("load patients: %w", err)
	}

	items := make([]MenuItem, 0, len(patients))
	for _, p := range patients {
		items = append(items, MenuItem{
			Text:      fmt.Sprintf("#%d  %s  (%s)", p.ID, p.FullName(), p.DateOfBirth.Format(dateLayout)),
			Target:    PatientDetails,
			Parameter: PatientRef{ID: p.ID},
		})
	}

	m := &PatientListModel{}
	m.setItems(items)
	return m, nil
}

// PatientDetailsModel shows one patient and links to the patient's records,
// appointments and bills. The patient is given as the navigation parameter.
type PatientDetailsModel struct {
	list
	store   records.Store
	patient *records.Patient
}

// NewPatientDetails returns an empty details screen; Initialize fills it.
func NewPatientDetails(store records.Store) *PatientDetailsModel {
	return &PatientDetailsModel{store: store}
}

// Patient returns the patient on display, nil before Initialize.
func (m *PatientDetailsModel) Patient() *records.Patient {
	return m.patient
}

// Initialize loads the patient given as a PatientRef or id.
func (m *PatientDetailsModel) Initialize(parameter any) error {
	id, err := patientID(parameter)
	if err != nil {
		return err
	}
	p, err := m.store.Patient(id)
	if err != nil {
		return err
	}

	m.patient = &p
	m.heading = p.FullName()
	ref := PatientRef{ID: p.ID}
	m.setItems([]MenuItem{
		{Text: "Born: " + p.DateOfBirth.Format(dateLayout)},
		{Text: "Phone: " + p.Phone},
		{Target: MedicalRecords, Parameter: ref},
		{Target: AppointmentList, Parameter: ref},
		{Target: Billing, Parameter: ref},
	})
	return nil
}

package screens

import (
	"fmt"

	"github.com/wardview/wardview/pkg/wardview/records"
)

// MedicalRecordsModel shows one patient's medical history, newest last.
// The patient is required as the navigation parameter.
type MedicalRecordsModel struct {
	list
	store records.Store
}

// NewMedicalRecords returns an empty history screen; Initialize fills it.
func NewMedicalRecords(store records.Store) *MedicalRecordsModel {
	return &MedicalRecordsModel{store: store}
}

// Initialize loads the history of the patient given as a PatientRef or id.
func (m *MedicalRecordsModel) Initialize(parameter any) error {
	id, err := patientID(parameter)
	if err != nil {
		return err
	}
	p, err := m.store.Patient(id)
	if err != nil {
		return err
	}
	history, err := m.store.MedicalRecordsForPatient(id)
	if err != nil {
		return fmt.Errorf("load medical records for patient %d: %w", id, err)
	}

	items := make([]MenuItem, 0, len(history))
	for _, r := range history {
		items = append(items, MenuItem{
			Text: fmt.Sprintf("%s  %s: %s  (%s)",
				r.Recorded.Format(dateLayout), r.Diagnosis, r.Treatment, doctorName(m.store, r.DoctorID)),
		})
	}

	m.heading = p.FullName()
	m.setItems(items)
	return nil
}

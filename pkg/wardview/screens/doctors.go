package screens

import (
	"fmt"

	"github.com/wardview/wardview/pkg/wardview/records"
)

// DoctorListModel lists the doctors with their specialty.
type DoctorListModel struct {
	list
}

// NewDoctorList loads every doctor.
func NewDoctorList(store records.Store) (*DoctorListModel, error) {
	doctors, err := store.Doctors()
	if err != nil {
		return nil, fmt.Errorf("load doctors: %w", err)
	}

	items := make([]MenuItem, 0, len(doctors))
	for _, d := range doctors {
		items = append(items, MenuItem{Text: fmt.Sprintf("#%d  %s  %s", d.ID, d.FullName(), d.Specialty)})
	}

	m := &DoctorListModel{}
	m.setItems(items)
	return m, nil
}

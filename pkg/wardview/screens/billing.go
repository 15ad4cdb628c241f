package screens

import (
	"fmt"

	"github.com/wardview/wardview/pkg/wardview/records"
)

// BillingModel lists bills, all of them or one patient's when a patient is passed
// as the navigation parameter. The heading carries the outstanding total.
type BillingModel struct {
	list
	store records.Store
}

// NewBilling loads every bill.
func NewBilling(store records.Store) (*BillingModel, error) {
	bills, err := store.Bills()
	if err != nil {
		return nil, fmt.Errorf("load bills: %w", err)
	}

	m := &BillingModel{store: store}
	m.show("", bills)
	return m, nil
}

// Initialize narrows the list to one patient. A nil parameter keeps every bill.
func (m *BillingModel) Initialize(parameter any) error {
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
	bills, err := m.store.BillsForPatient(id)
	if err != nil {
		return fmt.Errorf("load bills for patient %d: %w", id, err)
	}

	m.show(p.FullName(), bills)
	return nil
}

func (m *BillingModel) show(who string, bills []records.Bill) {
	var outstanding int64
	items := make([]MenuItem, 0, len(bills))
	for _, b := range bills {
		state := "paid"
		if !b.Paid {
			state = "unpaid"
			outstanding += b.AmountCents
		}
		items = append(items, MenuItem{
			Text: fmt.Sprintf("#%d  %s  %s  %s  %s",
				b.ID, b.Issued.Format(dateLayout), patientName(m.store, b.PatientID), b.Amount(), state),
		})
	}

	m.heading = "Outstanding: " + records.Bill{AmountCents: outstanding}.Amount()
	if who != "" {
		m.heading = who + "  " + m.heading
	}
	m.setItems(items)
}

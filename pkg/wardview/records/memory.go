package records

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is a Store that keeps records in maps. It is safe for concurrent use.
type MemoryStore struct {
	mu           sync.RWMutex
	patients     map[int]Patient
	doctors      map[int]Doctor
	appointments map[int]Appointment
	bills        map[int]Bill
	medical      map[int]MedicalRecord
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		patients:     make(map[int]Patient),
		doctors:      make(map[int]Doctor),
		appointments: make(map[int]Appointment),
		bills:        make(map[int]Bill),
		medical:      make(map[int]MedicalRecord),
	}
}

// Put methods insert or replace a record by id.

func (s *MemoryStore) PutPatient(p Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients[p.ID] = p
}

func (s *MemoryStore) PutDoctor(d Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors[d.ID] = d
}

func (s *MemoryStore) PutAppointment(a Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[a.ID] = a
}

func (s *MemoryStore) PutBill(b Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills[b.ID] = b
}

func (s *MemoryStore) PutMedicalRecord(r MedicalRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.medical[r.ID] = r
}

func (s *MemoryStore) Patients() ([]Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.patients, nil), nil
}

func (s *MemoryStore) Patient(id int) (Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.patients[id]
	if !ok {
		return Patient{}, &NotFoundError{Kind: "patient", ID: id}
	}
	return p, nil
}

func (s *MemoryStore) Doctors() ([]Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.doctors, nil), nil
}

func (s *MemoryStore) Doctor(id int) (Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.doctors[id]
	if !ok {
		return Doctor{}, &NotFoundError{Kind: "doctor", ID: id}
	}
	return d, nil
}

func (s *MemoryStore) Appointments() ([]Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.appointments, nil), nil
}

func (s *MemoryStore) Appointment(id int) (Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[id]
	if !ok {
		return Appointment{}, &NotFoundError{Kind: "appointment", ID: id}
	}
	return a, nil
}

func (s *MemoryStore) AppointmentsForPatient(patientID int) ([]Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.appointments, func(a Appointment) bool { return a.PatientID == patientID }), nil
}

func (s *MemoryStore) Bills() ([]Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.bills, nil), nil
}

func (s *MemoryStore) BillsForPatient(patientID int) ([]Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.bills, func(b Bill) bool { return b.PatientID == patientID }), nil
}

func (s *MemoryStore) MedicalRecordsForPatient(patientID int) ([]MedicalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.medical, func(r MedicalRecord) bool { return r.PatientID == patientID }), nil
}

// sortedValues returns the values that pass keep (all when keep is nil), by id.
func sortedValues[T any](m map[int]T, keep func(T) bool) []T {
	ids := make([]int, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

// Seed fills the store with a small demo hospital.
func (s *MemoryStore) Seed() *MemoryStore {
	day := func(y int, m time.Month, d, h int) time.Time {
		return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
	}

	s.PutPatient(Patient{ID: 1, FirstName: "Ada", LastName: "Byron", DateOfBirth: day(1985, time.December, 10, 0), Phone: "555-0101"})
	s.PutPatient(Patient{ID: 2, FirstName: "Mary", LastName: "Seacole", DateOfBirth: day(1970, time.November, 23, 0), Phone: "555-0102"})
	s.PutPatient(Patient{ID: 3, FirstName: "Joseph", LastName: "Lister", DateOfBirth: day(1992, time.April, 5, 0), Phone: "555-0103"})

	s.PutDoctor(Doctor{ID: 1, FirstName: "Elizabeth", LastName: "Blackwell", Specialty: "General practice"})
	s.PutDoctor(Doctor{ID: 2, FirstName: "Charles", LastName: "Drew", Specialty: "Haematology"})

	s.PutAppointment(Appointment{ID: 1, PatientID: 1, DoctorID: 1, At: day(2026, time.October, 20, 9), Reason: "Annual check-up", Status: AppointmentScheduled})
	s.PutAppointment(Appointment{ID: 2, PatientID: 2, DoctorID: 2, At: day(2026, time.October, 21, 14), Reason: "Blood test results", Status: AppointmentScheduled})
	s.PutAppointment(Appointment{ID: 3, PatientID: 2, DoctorID: 1, At: day(2026, time.September, 2, 11), Reason: "Follow-up", Status: AppointmentCompleted})

	s.PutBill(Bill{ID: 1, PatientID: 2, AmountCents: 12000, Issued: day(2026, time.September, 2, 12), Paid: true})
	s.PutBill(Bill{ID: 2, PatientID: 2, AmountCents: 4550, Issued: day(2026, time.October, 1, 12)})
	s.PutBill(Bill{ID: 3, PatientID: 3, AmountCents: 9900, Issued: day(2026, time.August, 15, 12)})

	s.PutMedicalRecord(MedicalRecord{ID: 1, PatientID: 2, DoctorID: 2, Recorded: day(2026, time.September, 2, 11), Diagnosis: "Iron deficiency anaemia", Treatment: "Ferrous sulfate 200mg daily"})
	s.PutMedicalRecord(MedicalRecord{ID: 2, PatientID: 1, DoctorID: 1, Recorded: day(2025, time.October, 18, 9), Diagnosis: "Healthy", Treatment: "None"})

	return s
}

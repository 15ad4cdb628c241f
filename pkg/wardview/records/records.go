// Package records defines the hospital entities the shell displays and the
// read-only Store it loads them from.
//
// Entities are flat rows linked by integer foreign keys. Persistence belongs to
// whatever implements Store; MemoryStore keeps everything in memory.
package records

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// NotFoundError reports which record was missing. It wraps ErrNotFound.
type NotFoundError struct {
	Kind string // Entity kind, e.g. "patient"
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

type Patient struct {
	ID          int
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Phone       string
}

// FullName returns "First Last".
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

type Doctor struct {
	ID        int
	FirstName string
	LastName  string
	Specialty string
}

// FullName returns "Dr. First Last".
func (d Doctor) FullName() string {
	return "Dr. " + d.FirstName + " " + d.LastName
}

// AppointmentStatus is the state of an appointment.
type AppointmentStatus int

const (
	AppointmentScheduled AppointmentStatus = iota
	AppointmentCompleted
	AppointmentCancelled
)

func (s AppointmentStatus) String() string {
	switch s {
	case AppointmentScheduled:
		return "scheduled"
	case AppointmentCompleted:
		return "completed"
	case AppointmentCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

type Appointment struct {
	ID        int
	PatientID int
	DoctorID  int
	At        time.Time
	Reason    string
	Status    AppointmentStatus
}

type Bill struct {
	ID          int
	PatientID   int
	AmountCents int64
	Issued      time.Time
	Paid        bool
}

// Amount formats the bill amount as dollars.
func (b Bill) Amount() string {
	return fmt.Sprintf("$%d.%02d", b.AmountCents/100, b.AmountCents%100)
}

type MedicalRecord struct {
	ID        int
	PatientID int
	DoctorID  int
	Recorded  time.Time
	Diagnosis string
	Treatment string
}

// Store is the read side of the hospital database as the shell sees it.
// Lists are ordered by id.
type Store interface {
	Patients() ([]Patient, error)
	Patient(id int) (Patient, error)
	Doctors() ([]Doctor, error)
	Doctor(id int) (Doctor, error)
	Appointments() ([]Appointment, error)
	Appointment(id int) (Appointment, error)
	AppointmentsForPatient(patientID int) ([]Appointment, error)
	Bills() ([]Bill, error)
	BillsForPatient(patientID int) ([]Bill, error)
	MedicalRecordsForPatient(patientID int) ([]MedicalRecord, error)
}

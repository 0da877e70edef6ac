package appointment

import (
	"context"
	"errors"

	"github.com/hospitalportal/hospitalportal/pkg/types"
)

// ErrNotFound is returned when no appointment matches the lookup.
var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	// Create inserts the slot and fills the id; names are not resolved.
	Create(ctx context.Context, a *Appointment) error
	// GetByID returns one appointment with patient and doctor names joined.
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	// List returns all appointments joined with names, date DESC then
	// time ASC.
	List(ctx context.Context) ([]*Appointment, error)
	// ListOn returns the appointments for one calendar day, time ASC.
	ListOn(ctx context.Context, day types.Date) ([]*Appointment, error)
	// ListByPatient returns a patient's appointments, newest first.
	ListByPatient(ctx context.Context, patientID int64) ([]*Appointment, error)
}

package appointment

import (
	"time"

	"github.com/hospitalportal/hospitalportal/pkg/types"
)

// Appointment joins the booked slot with patient and doctor names so list
// views render without extra lookups. Time is a wall-clock string ("14:30")
// matching the booking form.
type Appointment struct {
	ID          int64      `db:"id" json:"id"`
	PatientID   int64      `db:"patient_id" json:"patientId"`
	DoctorID    int64      `db:"doctor_id" json:"doctorId"`
	Date        types.Date `db:"date" json:"date"`
	Time        string     `db:"time" json:"time"`
	Type        string     `db:"type" json:"type"`
	Reason      string     `db:"reason" json:"reason"`
	Status      string     `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	PatientName string     `db:"patient_name" json:"patientName"`
	DoctorName  string     `db:"doctor_name" json:"doctorName"`
}

const (
	DefaultType     = "Walk-in"
	StatusScheduled = "Scheduled"
)

package lab

import "time"

// Order is a lab or radiology order. Report stays nil until a result is
// filed, at which point the status moves to Completed.
type Order struct {
	ID            int64     `db:"id" json:"id"`
	PatientID     int64     `db:"patient_id" json:"patientId"`
	TestName      string    `db:"test_name" json:"testName"`
	TestType      string    `db:"test_type" json:"testType"`
	ClinicalNotes string    `db:"clinical_notes" json:"clinicalNotes"`
	Status        string    `db:"status" json:"status"`
	Report        *string   `db:"report" json:"report"`
	OrderDate     time.Time `db:"order_date" json:"orderDate"`
	PatientName   string    `db:"patient_name" json:"patientName,omitempty"`
}

// Test is an orderable entry in the settings catalog.
type Test struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Type string `db:"type" json:"type"`
}

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

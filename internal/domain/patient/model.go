package patient

import (
	"time"

	"github.com/hospitalportal/hospitalportal/pkg/types"
)

// Patient is a pediatric patient record. Age is derived from DOB at read
// time and never stored.
type Patient struct {
	ID                int64      `db:"id" json:"id"`
	FullName          string     `db:"full_name" json:"fullName"`
	DOB               types.Date `db:"dob" json:"dob"`
	Gender            string     `db:"gender" json:"gender"`
	GuardianPrimary   string     `db:"guardian_primary" json:"guardianPrimary"`
	ContactPrimary    string     `db:"contact_primary" json:"contactPrimary"`
	GuardianSecondary *string    `db:"guardian_secondary" json:"guardianSecondary"`
	ContactSecondary  *string    `db:"contact_secondary" json:"contactSecondary"`
	Address           *string    `db:"address" json:"address"`
	BloodGroup        *string    `db:"blood_group" json:"bloodGroup"`
	Allergies         *string    `db:"allergies" json:"allergies"`
	CreatedAt         time.Time  `db:"created_at" json:"createdAt"`

	Age string `db:"-" json:"age"`
}

// GrowthRecord is one growth-chart measurement for a patient.
type GrowthRecord struct {
	ID        int64      `db:"id" json:"id"`
	PatientID int64      `db:"patient_id" json:"patientId"`
	AgeLabel  string     `db:"age_label" json:"ageLabel"`
	HeightCm  *float64   `db:"height_cm" json:"heightCm"`
	WeightKg  *float64   `db:"weight_kg" json:"weightKg"`
	HeadCm    *float64   `db:"head_cm" json:"headCm"`
	Date      types.Date `db:"date" json:"date"`
	Status    string     `db:"status" json:"status"`
}

// Consultation is a visit note.
type Consultation struct {
	ID        int64      `db:"id" json:"id"`
	PatientID int64      `db:"patient_id" json:"patientId"`
	Date      types.Date `db:"date" json:"date"`
	Complaint string     `db:"complaint" json:"complaint"`
	Diagnosis *string    `db:"diagnosis" json:"diagnosis"`
	Treatment *string    `db:"treatment" json:"treatment"`
	Notes     *string    `db:"notes" json:"notes"`
}

// VaccinationRecord tracks one scheduled dose for a patient. Status moves
// from Pending to Given, or to "Out of Stock" when administration failed
// for supply reasons.
type VaccinationRecord struct {
	ID          int64       `db:"id" json:"id"`
	PatientID   int64       `db:"patient_id" json:"patientId"`
	VaccineName string      `db:"vaccine_name" json:"vaccineName"`
	DoseLabel   string      `db:"dose_label" json:"doseLabel"`
	DueDate     types.Date  `db:"due_date" json:"dueDate"`
	GivenDate   *types.Date `db:"given_date" json:"givenDate"`
	Status      string      `db:"status" json:"status"`
}

// Milestone is a developmental milestone tracked per patient.
type Milestone struct {
	ID         int64       `db:"id" json:"id"`
	PatientID  int64       `db:"patient_id" json:"patientId"`
	Milestone  string      `db:"milestone" json:"milestone"`
	AgeLabel   string      `db:"age_label" json:"ageLabel"`
	Status     string      `db:"status" json:"status"`
	AchievedAt *types.Date `db:"achieved_at" json:"achievedAt"`
}

const (
	StatusPending    = "Pending"
	StatusGiven      = "Given"
	StatusOutOfStock = "Out of Stock"
	StatusAchieved   = "Achieved"
)

package referral

import "time"

// Referral records a patient handoff to or from an outside provider.
type Referral struct {
	ID           int64     `db:"id" json:"id"`
	PatientID    int64     `db:"patient_id" json:"patientId"`
	ReferralDate time.Time `db:"referral_date" json:"referralDate"`
	Direction    string    `db:"direction" json:"direction"`
	Provider     string    `db:"provider" json:"provider"`
	Reason       string    `db:"reason" json:"reason"`
	Status       string    `db:"status" json:"status"`
	PatientName  string    `db:"patient_name" json:"patientName,omitempty"`
}

const (
	DirectionOutbound = "Outbound"
	StatusSent        = "Sent"
)

package staff

import (
	"time"

	"github.com/hospitalportal/hospitalportal/pkg/types"
)

// Member is one staff row. Role is free text ("Doctor", "Nurse", ...);
// SecurityRole governs back-office access; Status is "Active"/"Inactive".
// Members are never hard-deleted: delete flips Status to "Inactive".
type Member struct {
	ID           int64     `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"fullName"`
	Role         string    `db:"role" json:"role"`
	Department   *string   `db:"department" json:"department"`
	Contact      *string   `db:"contact" json:"contact"`
	Email        *string   `db:"email" json:"email"`
	PasswordHash *string   `db:"password_hash" json:"-"`
	SecurityRole string    `db:"security_role" json:"securityRole"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Note is a dated free-text note attached to a staff member.
type Note struct {
	ID      int64      `db:"id" json:"id"`
	StaffID int64      `db:"staff_id" json:"staffId"`
	Note    string     `db:"note" json:"note"`
	Date    types.Date `db:"date" json:"date"`
}

// Doctor is the reduced shape the appointment form consumes.
type Doctor struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"full_name" json:"name"`
}

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"

	DefaultSecurityRole = "User"
)

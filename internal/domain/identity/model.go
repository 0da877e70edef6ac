package identity

import "time"

// User is a login account. Accounts are separate from staff rows: staff
// records are the HR view, users are credentials.
type User struct {
	ID           int64     `db:"user_id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	FullName     string    `db:"full_name" json:"fullName"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// AllowedRoles is the closed set a registration may claim.
var AllowedRoles = []string{"doctor", "nurse", "receptionist", "admin"}

const DefaultFullName = "Staff Member"

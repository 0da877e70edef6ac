package staff

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no staff row matches the lookup.
var ErrNotFound = errors.New("staff not found")

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id int64) (*Member, error)
	List(ctx context.Context) ([]*Member, error)
	// Update overwrites every field except the password hash, which only
	// changes when a non-nil value is supplied.
	Update(ctx context.Context, m *Member) error
	// Deactivate flips the status to Inactive and returns the updated row.
	Deactivate(ctx context.Context, id int64) (*Member, error)
	// ListDoctors returns active members whose role is Doctor.
	ListDoctors(ctx context.Context) ([]*Doctor, error)

	ListNotes(ctx context.Context, staffID int64) ([]*Note, error)
	AddNote(ctx context.Context, n *Note) error
}

package roster

import (
	"context"
	"errors"

	"github.com/hospitalportal/hospitalportal/pkg/types"
)

// ErrNotFound is returned when no roster row matches the lookup.
var ErrNotFound = errors.New("roster not found")

type Repository interface {
	// Upsert atomically inserts or fully replaces the shift map for
	// (staffID, weekStart). created reports whether a new row was inserted.
	Upsert(ctx context.Context, e *Entry) (created bool, err error)
	// GetByStaffWeek returns the row for one staff member and week.
	GetByStaffWeek(ctx context.Context, staffID int64, weekStart types.Date) (*Entry, error)
	// GetByStaffWeekForUpdate is GetByStaffWeek with a row lock; callers run
	// it inside a transaction when doing a read-modify-write of one day.
	GetByStaffWeekForUpdate(ctx context.Context, staffID int64, weekStart types.Date) (*Entry, error)
	// EnsureWeek inserts an empty row for (staffID, weekStart) unless one
	// exists. A locked read after EnsureWeek always sees a committed row,
	// even when another transaction is inserting the same week.
	EnsureWeek(ctx context.Context, staffID int64, weekStart types.Date) error
	// GetByStaff returns the most recent row for a staff member.
	GetByStaff(ctx context.Context, staffID int64) (*Entry, error)
	// List returns all roster rows joined with staff, newest week first.
	List(ctx context.Context) ([]*StaffEntry, error)
	// ListCovering returns rows whose week contains the given date, ordered
	// by staff name.
	ListCovering(ctx context.Context, day types.Date) ([]*StaffEntry, error)
	// Delete removes a row by id and returns it.
	Delete(ctx context.Context, id int64) (*Entry, error)
}

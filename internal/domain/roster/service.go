package roster

import (
	"context"
	"time"

	"github.com/hospitalportal/hospitalportal/internal/platform/db"
	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
	"github.com/hospitalportal/hospitalportal/pkg/types"
)

// Service contains the roster business logic. Per-day shift changes run
// inside a transaction so concurrent edits to the same week serialize on
// the row lock instead of overwriting each other.
type Service struct {
	entries Repository
	runTx   db.TxRunner
}

func NewService(entries Repository, runTx db.TxRunner) *Service {
	return &Service{entries: entries, runTx: runTx}
}

// Upsert saves the full shift map for a staff member's week, replacing
// whatever was stored before. The week start is aligned to Monday so two
// clients referencing different days of the same week target the same row.
// The returned bool reports whether a new row was created.
func (s *Service) Upsert(ctx context.Context, staffID int64, weekStart string, shifts ShiftMap) (*Entry, bool, error) {
	if staffID == 0 || weekStart == "" || shifts == nil {
		return nil, false, httpx.BadRequestf("staffId, weekStart, and shifts are required")
	}

	week, err := types.ParseDate(weekStart)
	if err != nil {
		return nil, false, httpx.BadRequestf("invalid weekStart: %s", weekStart)
	}

	entry := &Entry{
		StaffID:   staffID,
		WeekStart: AlignWeekStart(week),
		Shifts:    shifts,
	}
	created, err := s.entries.Upsert(ctx, entry)
	if err != nil {
		return nil, false, err
	}
	return entry, created, nil
}

// AssignShift adds a single shift label to one day of a staff member's
// week, creating the week entry if it does not exist yet. The week row is
// created first if absent, then read under a row lock and rewritten in the
// same transaction, so concurrent single-day edits always merge against a
// committed row instead of clobbering each other.
func (s *Service) AssignShift(ctx context.Context, staffID int64, date, shift string) (*Entry, error) {
	if staffID == 0 || date == "" || shift == "" {
		return nil, httpx.BadRequestf("staffId, date, and shift are required")
	}

	day, err := types.ParseDate(date)
	if err != nil {
		return nil, httpx.BadRequestf("invalid date: %s", date)
	}
	week := AlignWeekStart(day)

	var result *Entry
	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.entries.EnsureWeek(ctx, staffID, week); err != nil {
			return err
		}
		entry, err := s.entries.GetByStaffWeekForUpdate(ctx, staffID, week)
		if err != nil {
			return err
		}
		entry.Shifts.AssignLabel(day.String(), shift)
		if _, err := s.entries.Upsert(ctx, entry); err != nil {
			return err
		}
		result = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveShift removes a single shift label from one day of a staff
// member's week. Removing a label that is not present is a no-op; a week
// that was never rostered returns ErrNotFound.
func (s *Service) RemoveShift(ctx context.Context, staffID int64, date, shift string) (*Entry, error) {
	if staffID == 0 || date == "" || shift == "" {
		return nil, httpx.BadRequestf("staffId, date, and shift are required")
	}

	day, err := types.ParseDate(date)
	if err != nil {
		return nil, httpx.BadRequestf("invalid date: %s", date)
	}
	week := AlignWeekStart(day)

	var result *Entry
	err = s.runTx(ctx, func(ctx context.Context) error {
		entry, err := s.entries.GetByStaffWeekForUpdate(ctx, staffID, week)
		if err != nil {
			return err
		}
		entry.Shifts.RemoveLabel(day.String(), shift)
		if _, err := s.entries.Upsert(ctx, entry); err != nil {
			return err
		}
		result = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List returns every roster entry joined with staff details, newest week
// first.
func (s *Service) List(ctx context.Context) ([]*StaffEntry, error) {
	return s.entries.List(ctx)
}

// Today returns the roster entries whose week covers the current date,
// for the day view on the dashboard.
func (s *Service) Today(ctx context.Context) ([]*StaffEntry, error) {
	return s.entries.ListCovering(ctx, types.DateOf(time.Now()))
}

// GetByStaff returns the entry for a staff member. When weekStart is
// empty the most recently rostered week is returned.
func (s *Service) GetByStaff(ctx context.Context, staffID int64, weekStart string) (*Entry, error) {
	if staffID == 0 {
		return nil, httpx.BadRequestf("staffId is required")
	}
	if weekStart == "" {
		return s.entries.GetByStaff(ctx, staffID)
	}
	week, err := types.ParseDate(weekStart)
	if err != nil {
		return nil, httpx.BadRequestf("invalid weekStart: %s", weekStart)
	}
	return s.entries.GetByStaffWeek(ctx, staffID, AlignWeekStart(week))
}

// Delete removes a roster entry and returns the deleted row.
func (s *Service) Delete(ctx context.Context, id int64) (*Entry, error) {
	return s.entries.Delete(ctx, id)
}

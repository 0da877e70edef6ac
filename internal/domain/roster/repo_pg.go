package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospitalportal/hospitalportal/internal/platform/db"
	"github.com/hospitalportal/hospitalportal/pkg/types"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.ConnFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const rosterCols = `id, staff_id, week_start, shifts, created_at, updated_at`

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	var shifts []byte
	err := row.Scan(&e.ID, &e.StaffID, &e.WeekStart.Time, &shifts, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(shifts, &e.Shifts); err != nil {
		return nil, fmt.Errorf("decode shifts for roster %d: %w", e.ID, err)
	}
	return &e, nil
}

func (r *repoPG) Upsert(ctx context.Context, e *Entry) (bool, error) {
	shifts, err := json.Marshal(e.Shifts)
	if err != nil {
		return false, fmt.Errorf("encode shifts: %w", err)
	}

	// xmax = 0 distinguishes the insert path from the conflict-update path
	// without a prior read.
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO roster (staff_id, week_start, shifts)
		VALUES ($1, $2, $3)
		ON CONFLICT (staff_id, week_start)
		DO UPDATE SET shifts = EXCLUDED.shifts, updated_at = NOW()
		RETURNING `+rosterCols+`, (xmax = 0)`,
		e.StaffID, e.WeekStart.Time, shifts)

	var raw []byte
	var created bool
	if err := row.Scan(&e.ID, &e.StaffID, &e.WeekStart.Time, &raw, &e.CreatedAt, &e.UpdatedAt, &created); err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, &e.Shifts); err != nil {
		return false, fmt.Errorf("decode shifts for roster %d: %w", e.ID, err)
	}
	return created, nil
}

func (r *repoPG) GetByStaffWeek(ctx context.Context, staffID int64, weekStart types.Date) (*Entry, error) {
	return scanEntry(r.conn(ctx).QueryRow(ctx,
		`SELECT `+rosterCols+` FROM roster WHERE staff_id = $1 AND week_start = $2`,
		staffID, weekStart.Time))
}

func (r *repoPG) GetByStaffWeekForUpdate(ctx context.Context, staffID int64, weekStart types.Date) (*Entry, error) {
	return scanEntry(r.conn(ctx).QueryRow(ctx,
		`SELECT `+rosterCols+` FROM roster WHERE staff_id = $1 AND week_start = $2 FOR UPDATE`,
		staffID, weekStart.Time))
}

func (r *repoPG) EnsureWeek(ctx context.Context, staffID int64, weekStart types.Date) error {
	// DO NOTHING blocks on a concurrent insert of the same week until that
	// transaction commits, so the caller's locked read that follows sees
	// the committed row instead of losing the race.
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO roster (staff_id, week_start, shifts)
		VALUES ($1, $2, '{}'::jsonb)
		ON CONFLICT (staff_id, week_start) DO NOTHING`,
		staffID, weekStart.Time)
	return err
}

func (r *repoPG) GetByStaff(ctx context.Context, staffID int64) (*Entry, error) {
	return scanEntry(r.conn(ctx).QueryRow(ctx,
		`SELECT `+rosterCols+` FROM roster WHERE staff_id = $1 ORDER BY week_start DESC LIMIT 1`,
		staffID))
}

func scanStaffEntries(rows pgx.Rows) ([]*StaffEntry, error) {
	defer rows.Close()
	var items []*StaffEntry
	for rows.Next() {
		var se StaffEntry
		var shifts []byte
		if err := rows.Scan(&se.ID, &se.StaffID, &se.WeekStart.Time, &shifts,
			&se.CreatedAt, &se.UpdatedAt, &se.StaffName, &se.Role, &se.Department); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(shifts, &se.Shifts); err != nil {
			return nil, fmt.Errorf("decode shifts for roster %d: %w", se.ID, err)
		}
		items = append(items, &se)
	}
	return items, rows.Err()
}

func (r *repoPG) List(ctx context.Context) ([]*StaffEntry, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT r.id, r.staff_id, r.week_start, r.shifts, r.created_at, r.updated_at,
		       s.full_name, s.role, s.department
		FROM roster r
		JOIN staff s ON r.staff_id = s.id
		ORDER BY r.week_start DESC`)
	if err != nil {
		return nil, err
	}
	return scanStaffEntries(rows)
}

func (r *repoPG) ListCovering(ctx context.Context, day types.Date) ([]*StaffEntry, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT r.id, r.staff_id, r.week_start, r.shifts, r.created_at, r.updated_at,
		       s.full_name, s.role, s.department
		FROM roster r
		JOIN staff s ON r.staff_id = s.id
		WHERE $1::date BETWEEN r.week_start AND (r.week_start + INTERVAL '6 days')
		ORDER BY s.full_name ASC`, day.Time)
	if err != nil {
		return nil, err
	}
	return scanStaffEntries(rows)
}

func (r *repoPG) Delete(ctx context.Context, id int64) (*Entry, error) {
	return scanEntry(r.conn(ctx).QueryRow(ctx,
		`DELETE FROM roster WHERE id = $1 RETURNING `+rosterCols, id))
}

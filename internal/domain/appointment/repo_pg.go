package appointment

import (
	"context"
	"errors"

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

const joinedSelect = `
	SELECT a.id, a.patient_id, a.doctor_id, a.date, a.time, a.type, a.reason, a.status, a.created_at,
	       p.full_name AS patient_name,
	       s.full_name AS doctor_name
	FROM appointments a
	JOIN patients p ON a.patient_id = p.id
	JOIN staff s ON a.doctor_id = s.id`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date.Time, &a.Time, &a.Type, &a.Reason,
		&a.Status, &a.CreatedAt, &a.PatientName, &a.DoctorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func collect(rows pgx.Rows) ([]*Appointment, error) {
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, date, time, type, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		a.PatientID, a.DoctorID, a.Date.Time, a.Time, a.Type, a.Reason, a.Status).
		Scan(&a.ID, &a.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	return scanAppointment(r.conn(ctx).QueryRow(ctx, joinedSelect+` WHERE a.id = $1`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, joinedSelect+` ORDER BY a.date DESC, a.time ASC`)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *repoPG) ListOn(ctx context.Context, day types.Date) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, joinedSelect+` WHERE a.date = $1 ORDER BY a.time ASC`, day.Time)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx,
		joinedSelect+` WHERE a.patient_id = $1 ORDER BY a.date DESC, a.time ASC`, patientID)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

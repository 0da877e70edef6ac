package lab

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospitalportal/hospitalportal/internal/platform/db"
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

func (r *repoPG) CreateOrder(ctx context.Context, o *Order) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO lab_orders (patient_id, test_name, test_type, clinical_notes, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, order_date`,
		o.PatientID, o.TestName, o.TestType, o.ClinicalNotes, o.Status).
		Scan(&o.ID, &o.OrderDate)
}

const orderSelect = `
	SELECT lo.id, lo.patient_id, lo.test_name, lo.test_type, lo.clinical_notes,
	       lo.status, lo.report, lo.order_date, p.full_name AS patient_name
	FROM lab_orders lo
	JOIN patients p ON p.id = lo.patient_id`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.PatientID, &o.TestName, &o.TestType, &o.ClinicalNotes,
		&o.Status, &o.Report, &o.OrderDate, &o.PatientName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]*Order, error) {
	defer rows.Close()
	var items []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

func (r *repoPG) ListOrders(ctx context.Context) ([]*Order, error) {
	rows, err := r.conn(ctx).Query(ctx, orderSelect+` ORDER BY lo.id DESC`)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *repoPG) ListOrdersByPatient(ctx context.Context, patientID int64) ([]*Order, error) {
	rows, err := r.conn(ctx).Query(ctx, orderSelect+` WHERE lo.patient_id = $1 ORDER BY lo.id DESC`, patientID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *repoPG) SetReport(ctx context.Context, id int64, report, status string) (*Order, error) {
	var orderID int64
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE lab_orders SET report = $1, status = $2 WHERE id = $3 RETURNING id`,
		report, status, id).Scan(&orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return scanOrder(r.conn(ctx).QueryRow(ctx, orderSelect+` WHERE lo.id = $1`, orderID))
}

func (r *repoPG) ListTests(ctx context.Context) ([]*Test, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT id, name, type FROM lab_tests ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Test
	for rows.Next() {
		var t Test
		if err := rows.Scan(&t.ID, &t.Name, &t.Type); err != nil {
			return nil, err
		}
		items = append(items, &t)
	}
	return items, rows.Err()
}

func (r *repoPG) InsertTest(ctx context.Context, t *Test) error {
	return r.conn(ctx).QueryRow(ctx,
		`INSERT INTO lab_tests (name, type) VALUES ($1, $2) RETURNING id`,
		t.Name, t.Type).Scan(&t.ID)
}

func (r *repoPG) UpdateTest(ctx context.Context, t *Test) error {
	err := r.conn(ctx).QueryRow(ctx,
		`UPDATE lab_tests SET name = $1, type = $2 WHERE id = $3 RETURNING id`,
		t.Name, t.Type, t.ID).Scan(&t.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

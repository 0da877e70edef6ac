package billing

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

func (r *repoPG) CreateInvoice(ctx context.Context, inv *Invoice) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO invoices (patient_id, invoice_date, total_amount, status)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		inv.PatientID, inv.InvoiceDate.Time, inv.TotalAmount, inv.Status).Scan(&inv.ID)
}

func (r *repoPG) AddItem(ctx context.Context, item *InvoiceItem) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO invoice_items (invoice_id, description, cost)
		VALUES ($1, $2, $3) RETURNING id`,
		item.InvoiceID, item.Description, item.Cost).Scan(&item.ID)
}

func collectInvoices(rows pgx.Rows) ([]*Invoice, error) {
	defer rows.Close()
	var items []*Invoice
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.PatientID, &inv.InvoiceDate.Time, &inv.TotalAmount,
			&inv.Status, &inv.PatientName); err != nil {
			return nil, err
		}
		items = append(items, &inv)
	}
	return items, rows.Err()
}

const invoiceSelect = `
	SELECT i.id, i.patient_id, i.invoice_date, i.total_amount, i.status,
	       p.full_name AS patient_name
	FROM invoices i
	JOIN patients p ON i.patient_id = p.id`

func (r *repoPG) ListInvoices(ctx context.Context) ([]*Invoice, error) {
	rows, err := r.conn(ctx).Query(ctx, invoiceSelect+` ORDER BY i.id DESC`)
	if err != nil {
		return nil, err
	}
	return collectInvoices(rows)
}

func (r *repoPG) ListInvoicesByPatient(ctx context.Context, patientID int64) ([]*Invoice, error) {
	rows, err := r.conn(ctx).Query(ctx, invoiceSelect+` WHERE i.patient_id = $1 ORDER BY i.id DESC`, patientID)
	if err != nil {
		return nil, err
	}
	return collectInvoices(rows)
}

func (r *repoPG) ListItems(ctx context.Context, invoiceID int64) ([]*InvoiceItem, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, invoice_id, description, cost
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id ASC`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*InvoiceItem
	for rows.Next() {
		var it InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.Cost); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *repoPG) ListCodes(ctx context.Context) ([]*BillingCode, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, code, description, cost FROM billing_codes ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*BillingCode
	for rows.Next() {
		var c BillingCode
		if err := rows.Scan(&c.ID, &c.Code, &c.Description, &c.Cost); err != nil {
			return nil, err
		}
		items = append(items, &c)
	}
	return items, rows.Err()
}

func (r *repoPG) InsertCode(ctx context.Context, c *BillingCode) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO billing_codes (code, description, cost)
		VALUES ($1, $2, $3) RETURNING id`,
		c.Code, c.Description, c.Cost).Scan(&c.ID)
}

func (r *repoPG) UpdateCode(ctx context.Context, c *BillingCode) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE billing_codes SET code = $1, description = $2, cost = $3
		WHERE id = $4 RETURNING id`,
		c.Code, c.Description, c.Cost, c.ID).Scan(&c.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

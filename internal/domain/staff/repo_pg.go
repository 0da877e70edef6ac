package staff

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

const memberCols = `id, full_name, role, department, contact, email, password_hash, security_role, status, created_at, updated_at`

func scanMember(row pgx.Row) (*Member, error) {
	var m Member
	err := row.Scan(&m.ID, &m.FullName, &m.Role, &m.Department, &m.Contact, &m.Email,
		&m.PasswordHash, &m.SecurityRole, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *repoPG) Create(ctx context.Context, m *Member) error {
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO staff (full_name, role, department, contact, email, password_hash, security_role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		m.FullName, m.Role, m.Department, m.Contact, m.Email, m.PasswordHash, m.SecurityRole, m.Status)
	return row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Member, error) {
	return scanMember(r.conn(ctx).QueryRow(ctx,
		`SELECT `+memberCols+` FROM staff WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Member, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+memberCols+` FROM staff ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, m *Member) error {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE staff
		SET full_name = $1,
		    role = $2,
		    department = $3,
		    contact = $4,
		    email = $5,
		    status = $6,
		    password_hash = COALESCE($7, password_hash),
		    updated_at = NOW()
		WHERE id = $8
		RETURNING `+memberCols,
		m.FullName, m.Role, m.Department, m.Contact, m.Email, m.Status, m.PasswordHash, m.ID)

	updated, err := scanMember(row)
	if err != nil {
		return err
	}
	*m = *updated
	return nil
}

func (r *repoPG) Deactivate(ctx context.Context, id int64) (*Member, error) {
	return scanMember(r.conn(ctx).QueryRow(ctx, `
		UPDATE staff SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+memberCols, StatusInactive, id))
}

func (r *repoPG) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, full_name FROM staff
		WHERE role = 'Doctor' AND status = $1
		ORDER BY full_name ASC`, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}

func (r *repoPG) ListNotes(ctx context.Context, staffID int64) ([]*Note, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, staff_id, note, date FROM staff_notes
		WHERE staff_id = $1 ORDER BY date DESC`, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.StaffID, &n.Note, &n.Date.Time); err != nil {
			return nil, err
		}
		items = append(items, &n)
	}
	return items, rows.Err()
}

func (r *repoPG) AddNote(ctx context.Context, n *Note) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO staff_notes (staff_id, note, date)
		VALUES ($1, $2, $3) RETURNING id`,
		n.StaffID, n.Note, n.Date.Time).Scan(&n.ID)
}

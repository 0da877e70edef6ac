package referral

import (
	"context"

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

func (r *repoPG) Create(ctx context.Context, ref *Referral) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO referrals (patient_id, referral_date, provider, reason, direction, status)
		VALUES ($1, NOW(), $2, $3, $4, $5)
		RETURNING id, referral_date`,
		ref.PatientID, ref.Provider, ref.Reason, ref.Direction, ref.Status).
		Scan(&ref.ID, &ref.ReferralDate)
}

func (r *repoPG) List(ctx context.Context) ([]*Referral, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT r.id, r.patient_id, r.referral_date, r.direction, r.provider, r.reason, r.status,
		       p.full_name AS patient_name
		FROM referrals r
		JOIN patients p ON p.id = r.patient_id
		ORDER BY r.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Referral
	for rows.Next() {
		var ref Referral
		if err := rows.Scan(&ref.ID, &ref.PatientID, &ref.ReferralDate, &ref.Direction,
			&ref.Provider, &ref.Reason, &ref.Status, &ref.PatientName); err != nil {
			return nil, err
		}
		items = append(items, &ref)
	}
	return items, rows.Err()
}

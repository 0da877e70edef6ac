package inventory

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

func (r *repoPG) ListVaccines(ctx context.Context) ([]*Vaccine, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT id, name, vaccine_id FROM vaccines ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Vaccine
	for rows.Next() {
		var v Vaccine
		if err := rows.Scan(&v.ID, &v.Name, &v.VaccineID); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

func (r *repoPG) GetVaccineName(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.conn(ctx).QueryRow(ctx, `SELECT name FROM vaccines WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrVaccineNotFound
	}
	return name, err
}

func (r *repoPG) ListItems(ctx context.Context) ([]*Item, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, vaccine_id, vaccine_name, batch_number, expiry_date, quantity, status
		FROM inventory ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.VaccineID, &it.VaccineName, &it.BatchNumber,
			&it.ExpiryDate.Time, &it.Quantity, &it.Status); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *repoPG) AddItem(ctx context.Context, item *Item) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO inventory (vaccine_id, vaccine_name, batch_number, expiry_date, quantity, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		item.VaccineID, item.VaccineName, item.BatchNumber, item.ExpiryDate.Time,
		item.Quantity, item.Status).Scan(&item.ID)
}

func (r *repoPG) ListLowStock(ctx context.Context, threshold int) ([]*LowStockItem, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, vaccine_name AS name, quantity AS quantity_in_stock, $1::int AS reorder_level
		FROM inventory
		WHERE quantity <= $1
		ORDER BY vaccine_name ASC`, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*LowStockItem
	for rows.Next() {
		var it LowStockItem
		if err := rows.Scan(&it.ID, &it.Name, &it.QuantityInStock, &it.ReorderLevel); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

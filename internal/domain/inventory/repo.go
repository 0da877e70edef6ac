package inventory

import (
	"context"
	"errors"
)

// ErrVaccineNotFound is returned when a stock entry references an unknown
// vaccine catalog id.
var ErrVaccineNotFound = errors.New("vaccine not found")

type Repository interface {
	ListVaccines(ctx context.Context) ([]*Vaccine, error)
	// GetVaccineName resolves a catalog row id to its display name.
	GetVaccineName(ctx context.Context, id int64) (string, error)

	ListItems(ctx context.Context) ([]*Item, error)
	AddItem(ctx context.Context, item *Item) error
	// ListLowStock returns batches with quantity at or below the threshold,
	// ordered by vaccine name.
	ListLowStock(ctx context.Context, threshold int) ([]*LowStockItem, error)
}

package lab

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no lab order or catalog test matches the
// lookup.
var ErrNotFound = errors.New("lab record not found")

type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	// ListOrders returns all orders joined with patient names, id DESC.
	ListOrders(ctx context.Context) ([]*Order, error)
	ListOrdersByPatient(ctx context.Context, patientID int64) ([]*Order, error)
	// SetReport files a report and updates the status, returning the row.
	SetReport(ctx context.Context, id int64, report, status string) (*Order, error)

	ListTests(ctx context.Context) ([]*Test, error)
	InsertTest(ctx context.Context, t *Test) error
	UpdateTest(ctx context.Context, t *Test) error
}

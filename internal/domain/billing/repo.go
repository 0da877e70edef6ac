package billing

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no invoice or billing code matches the lookup.
var ErrNotFound = errors.New("billing record not found")

type Repository interface {
	// CreateInvoice inserts the invoice header and fills the id.
	CreateInvoice(ctx context.Context, inv *Invoice) error
	// AddItem inserts one line for an invoice.
	AddItem(ctx context.Context, item *InvoiceItem) error
	// ListInvoices returns all invoices joined with patient names, id DESC.
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	// ListInvoicesByPatient returns a patient's invoices, id DESC.
	ListInvoicesByPatient(ctx context.Context, patientID int64) ([]*Invoice, error)
	// ListItems returns the lines of one invoice.
	ListItems(ctx context.Context, invoiceID int64) ([]*InvoiceItem, error)

	ListCodes(ctx context.Context) ([]*BillingCode, error)
	InsertCode(ctx context.Context, c *BillingCode) error
	UpdateCode(ctx context.Context, c *BillingCode) error
}

package billing

import (
	"github.com/hospitalportal/hospitalportal/pkg/types"
)

// Invoice is a billed visit. TotalAmount is a snapshot of the item costs at
// creation time; later billing-code price changes never alter it.
type Invoice struct {
	ID          int64      `db:"id" json:"id"`
	PatientID   int64      `db:"patient_id" json:"patientId"`
	InvoiceDate types.Date `db:"invoice_date" json:"invoiceDate"`
	TotalAmount float64    `db:"total_amount" json:"totalAmount"`
	Status      string     `db:"status" json:"status"`
	PatientName string     `db:"patient_name" json:"patientName,omitempty"`
}

// InvoiceItem is one billed line.
type InvoiceItem struct {
	ID          int64   `db:"id" json:"id"`
	InvoiceID   int64   `db:"invoice_id" json:"invoiceId"`
	Description string  `db:"description" json:"description"`
	Cost        float64 `db:"cost" json:"cost"`
}

// BillingCode is a priced service in the settings catalog.
type BillingCode struct {
	ID          int64   `db:"id" json:"id"`
	Code        string  `db:"code" json:"code"`
	Description string  `db:"description" json:"description"`
	Cost        float64 `db:"cost" json:"cost"`
}

const StatusPending = "Pending"

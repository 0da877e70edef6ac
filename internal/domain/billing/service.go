package billing

import (
	"context"

	"github.com/hospitalportal/hospitalportal/internal/platform/db"
	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
	"github.com/hospitalportal/hospitalportal/pkg/types"
)

type Service struct {
	billing Repository
	runTx   db.TxRunner
}

func NewService(billing Repository, runTx db.TxRunner) *Service {
	return &Service{billing: billing, runTx: runTx}
}

// ItemInput is one invoice line as submitted by the billing form.
type ItemInput struct {
	Desc string  `json:"desc"`
	Cost float64 `json:"cost"`
}

// InvoiceInput is the invoice creation payload.
type InvoiceInput struct {
	PatientID   int64       `json:"patientId"`
	InvoiceDate string      `json:"invoiceDate"`
	Items       []ItemInput `json:"items"`
	Status      string      `json:"status"`
}

// CreateInvoice writes the invoice header and all items in one
// transaction: a failing item insert rolls back the header so no partial
// invoice ever persists. The total is the sum of the submitted item costs.
func (s *Service) CreateInvoice(ctx context.Context, in InvoiceInput) (*Invoice, error) {
	if in.PatientID == 0 || in.InvoiceDate == "" || len(in.Items) == 0 {
		return nil, httpx.BadRequestf("All fields are required.")
	}
	day, err := types.ParseDate(in.InvoiceDate)
	if err != nil {
		return nil, httpx.BadRequestf("invalid invoiceDate: %s", in.InvoiceDate)
	}

	var total float64
	for _, item := range in.Items {
		total += item.Cost
	}

	inv := &Invoice{
		PatientID:   in.PatientID,
		InvoiceDate: day,
		TotalAmount: total,
		Status:      in.Status,
	}
	if inv.Status == "" {
		inv.Status = StatusPending
	}

	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.billing.CreateInvoice(ctx, inv); err != nil {
			return err
		}
		for _, item := range in.Items {
			line := &InvoiceItem{InvoiceID: inv.ID, Description: item.Desc, Cost: item.Cost}
			if err := s.billing.AddItem(ctx, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) ListInvoices(ctx context.Context) ([]*Invoice, error) {
	return s.billing.ListInvoices(ctx)
}

func (s *Service) InvoicesByPatient(ctx context.Context, patientID int64) ([]*Invoice, error) {
	return s.billing.ListInvoicesByPatient(ctx, patientID)
}

func (s *Service) InvoiceItems(ctx context.Context, invoiceID int64) ([]*InvoiceItem, error) {
	return s.billing.ListItems(ctx, invoiceID)
}

// -- Billing codes --

func (s *Service) Codes(ctx context.Context) ([]*BillingCode, error) {
	return s.billing.ListCodes(ctx)
}

// CodeInput is the billing code payload. Cost is a pointer so a free
// service (cost 0) is distinguishable from a payload that omitted the
// cost entirely.
type CodeInput struct {
	ID          int64    `json:"id"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Cost        *float64 `json:"cost"`
}

// SaveCode inserts a new billing code, or updates the existing one when an
// id is supplied. The returned bool reports whether a new code was created.
func (s *Service) SaveCode(ctx context.Context, in CodeInput) (*BillingCode, bool, error) {
	if in.Code == "" || in.Description == "" || in.Cost == nil {
		return nil, false, httpx.BadRequestf("Missing required fields")
	}
	code := &BillingCode{ID: in.ID, Code: in.Code, Description: in.Description, Cost: *in.Cost}
	if code.ID != 0 {
		if err := s.billing.UpdateCode(ctx, code); err != nil {
			return nil, false, err
		}
		return code, false, nil
	}
	if err := s.billing.InsertCode(ctx, code); err != nil {
		return nil, false, err
	}
	return code, true, nil
}

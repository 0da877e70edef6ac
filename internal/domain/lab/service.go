package lab

import (
	"context"

	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
)

type Service struct {
	lab Repository
}

func NewService(lab Repository) *Service {
	return &Service{lab: lab}
}

// OrderInput is the lab order form.
type OrderInput struct {
	PatientID     int64  `json:"patientId"`
	TestName      string `json:"testName"`
	TestType      string `json:"testType"`
	ClinicalNotes string `json:"clinicalNotes"`
}

func (s *Service) CreateOrder(ctx context.Context, in OrderInput) (*Order, error) {
	if in.PatientID == 0 || in.TestName == "" || in.TestType == "" {
		return nil, httpx.BadRequestf("Missing required fields.")
	}
	o := &Order{
		PatientID:     in.PatientID,
		TestName:      in.TestName,
		TestType:      in.TestType,
		ClinicalNotes: in.ClinicalNotes,
		Status:        StatusPending,
	}
	if err := s.lab.CreateOrder(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Orders(ctx context.Context) ([]*Order, error) {
	return s.lab.ListOrders(ctx)
}

func (s *Service) OrdersByPatient(ctx context.Context, patientID int64) ([]*Order, error) {
	return s.lab.ListOrdersByPatient(ctx, patientID)
}

// FileReport attaches a report to an order. The status defaults to
// Completed unless the caller supplies one.
func (s *Service) FileReport(ctx context.Context, id int64, report, status string) (*Order, error) {
	if status == "" {
		status = StatusCompleted
	}
	return s.lab.SetReport(ctx, id, report, status)
}

// -- Test catalog --

func (s *Service) Tests(ctx context.Context) ([]*Test, error) {
	return s.lab.ListTests(ctx)
}

// SaveTest inserts a catalog test, or updates the existing one when an id
// is supplied. The returned bool reports whether a new test was created.
func (s *Service) SaveTest(ctx context.Context, t *Test) (bool, error) {
	if t.Name == "" || t.Type == "" {
		return false, httpx.BadRequestf("Missing required fields")
	}
	if t.ID != 0 {
		return false, s.lab.UpdateTest(ctx, t)
	}
	return true, s.lab.InsertTest(ctx, t)
}

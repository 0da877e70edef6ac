package inventory

import (
	"context"

	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
	"github.com/hospitalportal/hospitalportal/pkg/types"
)

type Service struct {
	stock Repository
}

func NewService(stock Repository) *Service {
	return &Service{stock: stock}
}

// Input is the add-stock form. VaccineID references the vaccine catalog
// row, whose name is denormalized onto the batch.
type Input struct {
	VaccineID   int64  `json:"vaccineId"`
	BatchNumber string `json:"batchNumber"`
	ExpiryDate  string `json:"expiryDate"`
	Quantity    int    `json:"quantity"`
}

func (s *Service) Vaccines(ctx context.Context) ([]*Vaccine, error) {
	return s.stock.ListVaccines(ctx)
}

func (s *Service) Items(ctx context.Context) ([]*Item, error) {
	return s.stock.ListItems(ctx)
}

// AddItem stocks a batch. The status is derived from the quantity.
func (s *Service) AddItem(ctx context.Context, in Input) (*Item, error) {
	if in.VaccineID == 0 || in.BatchNumber == "" || in.ExpiryDate == "" || in.Quantity == 0 {
		return nil, httpx.BadRequestf("All fields are required.")
	}
	expiry, err := types.ParseDate(in.ExpiryDate)
	if err != nil {
		return nil, httpx.BadRequestf("invalid expiryDate: %s", in.ExpiryDate)
	}

	name, err := s.stock.GetVaccineName(ctx, in.VaccineID)
	if err != nil {
		return nil, err
	}

	item := &Item{
		VaccineID:   in.VaccineID,
		VaccineName: name,
		BatchNumber: in.BatchNumber,
		ExpiryDate:  expiry,
		Quantity:    in.Quantity,
		Status:      StatusOutOfStock,
	}
	if in.Quantity > 0 {
		item.Status = StatusAvailable
	}
	if err := s.stock.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) LowStock(ctx context.Context) ([]*LowStockItem, error) {
	return s.stock.ListLowStock(ctx, LowStockThreshold)
}

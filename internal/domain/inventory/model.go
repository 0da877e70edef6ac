package inventory

import "github.com/hospitalportal/hospitalportal/pkg/types"

// Vaccine is a catalog entry. VaccineID is the external catalog code
// ("MMR-2"), distinct from the row id.
type Vaccine struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	VaccineID string `db:"vaccine_id" json:"vaccineId"`
}

// Item is one stocked vaccine batch. VaccineName is denormalized at insert
// time so stock views survive catalog edits.
type Item struct {
	ID          int64      `db:"id" json:"id"`
	VaccineID   int64      `db:"vaccine_id" json:"vaccineId"`
	VaccineName string     `db:"vaccine_name" json:"vaccineName"`
	BatchNumber string     `db:"batch_number" json:"batchNumber"`
	ExpiryDate  types.Date `db:"expiry_date" json:"expiryDate"`
	Quantity    int        `db:"quantity" json:"quantity"`
	Status      string     `db:"status" json:"status"`
}

// LowStockItem is the reorder view: any batch at or below the threshold.
type LowStockItem struct {
	ID              int64  `db:"id" json:"id"`
	Name            string `db:"name" json:"name"`
	QuantityInStock int    `db:"quantity_in_stock" json:"quantityInStock"`
	ReorderLevel    int    `db:"reorder_level" json:"reorderLevel"`
}

const (
	StatusAvailable  = "Available"
	StatusOutOfStock = "Out of stock"

	// LowStockThreshold marks batches as needing reorder.
	LowStockThreshold = 10
)

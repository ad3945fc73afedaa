package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateInventoryRequest carries a partial update; nil fields are left
// untouched on the record.
type UpdateInventoryRequest struct {
	UnitsAvailable *int `json:"units_available" validate:"omitempty"`
	DonorsCount    *int `json:"donors_count" validate:"omitempty"`
}

type InventoryResponse struct {
	ID                uuid.UUID `json:"id"`
	BloodGroup        string    `json:"blood_group"`
	UnitsAvailable    int       `json:"units_available"`
	DonorsCount       int       `json:"donors_count"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	LastUpdated       time.Time `json:"last_updated"`
}

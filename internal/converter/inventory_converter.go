package converter

import (
	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/domain/entity"
)

// InventoryToResponse converts a BloodInventory entity to its response DTO.
func InventoryToResponse(record *entity.BloodInventory) *dto.InventoryResponse {
	if record == nil {
		return nil
	}

	return &dto.InventoryResponse{
		ID:                record.ID,
		BloodGroup:        record.BloodGroup,
		UnitsAvailable:    record.UnitsAvailable,
		DonorsCount:       record.DonorsCount,
		LowStockThreshold: record.LowStockThreshold,
		LastUpdated:       record.LastUpdated,
	}
}

// InventoriesToResponse converts a slice of BloodInventory entities.
func InventoriesToResponse(records []entity.BloodInventory) []dto.InventoryResponse {
	responses := make([]dto.InventoryResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *InventoryToResponse(&records[i]))
	}
	return responses
}

package usecase

import (
	"context"
	"time"

	"blood-bank-backend/internal/converter"
	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/domain/entity"
	"blood-bank-backend/internal/domain/repository"
	"blood-bank-backend/internal/service"

	"github.com/sirupsen/logrus"
)

type InventoryUsecase interface {
	List(ctx context.Context) ([]dto.InventoryResponse, error)
	Upsert(ctx context.Context, bloodGroup string, req *dto.UpdateInventoryRequest) (*dto.InventoryResponse, error)
	Initialize(ctx context.Context) ([]dto.InventoryResponse, error)
}

type inventoryUsecase struct {
	log           *logrus.Logger
	inventoryRepo repository.InventoryRepository
	stockAlerts   *service.StockAlertService
}

func NewInventoryUsecase(
	log *logrus.Logger,
	inventoryRepo repository.InventoryRepository,
	stockAlerts *service.StockAlertService,
) InventoryUsecase {
	return &inventoryUsecase{
		log:           log,
		inventoryRepo: inventoryRepo,
		stockAlerts:   stockAlerts,
	}
}

func (u *inventoryUsecase) List(ctx context.Context) ([]dto.InventoryResponse, error) {
	records, err := u.inventoryRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list inventory: %+v", err)
		return nil, err
	}
	return converter.InventoriesToResponse(records), nil
}

// Upsert applies a partial update to the record for bloodGroup, creating
// it when absent. Omitted fields are left untouched. Runs the low-stock
// check afterwards.
func (u *inventoryUsecase) Upsert(ctx context.Context, bloodGroup string, req *dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	record, err := u.inventoryRepo.FindByBloodGroup(ctx, bloodGroup)
	if err != nil {
		u.log.Warnf("Failed to find inventory record: %+v", err)
		return nil, err
	}

	if record == nil {
		record = &entity.BloodInventory{
			BloodGroup:        bloodGroup,
			LowStockThreshold: entity.DefaultLowStockThreshold,
		}
		if req.UnitsAvailable != nil {
			record.UnitsAvailable = *req.UnitsAvailable
		}
		if req.DonorsCount != nil {
			record.DonorsCount = *req.DonorsCount
		}
		if err := u.inventoryRepo.Create(ctx, record); err != nil {
			u.log.Warnf("Failed to create inventory record: %+v", err)
			return nil, err
		}
	} else {
		now := time.Now()
		fields := map[string]interface{}{
			"last_updated": now,
		}
		if req.UnitsAvailable != nil {
			record.UnitsAvailable = *req.UnitsAvailable
			fields["units_available"] = *req.UnitsAvailable
		}
		if req.DonorsCount != nil {
			record.DonorsCount = *req.DonorsCount
			fields["donors_count"] = *req.DonorsCount
		}
		if _, err := u.inventoryRepo.UpdateFields(ctx, bloodGroup, fields); err != nil {
			u.log.Warnf("Failed to update inventory record: %+v", err)
			return nil, err
		}
		record.LastUpdated = now
	}

	if err := u.stockAlerts.CheckLowStock(ctx); err != nil {
		u.log.Warnf("Low stock check failed after inventory update: %+v", err)
	}

	return converter.InventoryToResponse(record), nil
}

// Initialize seeds a zeroed record for each canonical blood group that
// does not yet have one. Idempotent; existing records are untouched.
func (u *inventoryUsecase) Initialize(ctx context.Context) ([]dto.InventoryResponse, error) {
	for _, bloodGroup := range entity.BloodGroups {
		record := &entity.BloodInventory{
			BloodGroup:        bloodGroup,
			LowStockThreshold: entity.DefaultLowStockThreshold,
		}
		if err := u.inventoryRepo.CreateIfAbsent(ctx, record); err != nil {
			u.log.Warnf("Failed to seed inventory record for %s: %+v", bloodGroup, err)
			return nil, err
		}
	}

	records, err := u.inventoryRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list inventory after initialize: %+v", err)
		return nil, err
	}

	return converter.InventoriesToResponse(records), nil
}

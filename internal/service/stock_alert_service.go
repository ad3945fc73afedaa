package service

import (
	"context"
	"fmt"

	"blood-bank-backend/internal/domain/entity"
	"blood-bank-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// StockAlertService scans the inventory ledger and emits a low-stock
// notification for every record under its threshold. It is invoked as a
// plain post-mutation hook by the inventory and request usecases.
//
// Deliberately no deduplication: every qualifying run emits fresh
// notifications, so repeated mutations of an already-low record keep
// alerting admins.
type StockAlertService struct {
	log              *logrus.Logger
	inventoryRepo    repository.InventoryRepository
	notificationRepo repository.NotificationRepository
}

func NewStockAlertService(
	log *logrus.Logger,
	inventoryRepo repository.InventoryRepository,
	notificationRepo repository.NotificationRepository,
) *StockAlertService {
	return &StockAlertService{
		log:              log,
		inventoryRepo:    inventoryRepo,
		notificationRepo: notificationRepo,
	}
}

// CheckLowStock emits one "low_stock" notification per record whose
// available units are below its threshold, addressed to admins.
func (s *StockAlertService) CheckLowStock(ctx context.Context) error {
	records, err := s.inventoryRepo.FindBelowThreshold(ctx)
	if err != nil {
		s.log.Warnf("Failed to scan inventory for low stock: %+v", err)
		return err
	}

	for i := range records {
		record := records[i]
		notification := &entity.Notification{
			Type:        entity.NotificationLowStock,
			Title:       fmt.Sprintf("Low stock alert: %s", record.BloodGroup),
			Message:     fmt.Sprintf("%s inventory is down to %d units (threshold %d)", record.BloodGroup, record.UnitsAvailable, record.LowStockThreshold),
			Audience:    entity.AudienceAdmins,
			RelatedID:   &record.ID,
			RelatedType: "blood_inventory",
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			s.log.Warnf("Failed to create low stock notification for %s: %+v", record.BloodGroup, err)
			return err
		}
	}

	return nil
}

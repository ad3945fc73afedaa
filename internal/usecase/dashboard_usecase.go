package usecase

import (
	"context"

	"blood-bank-backend/internal/converter"
	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/domain/entity"
	"blood-bank-backend/internal/domain/repository"
	"blood-bank-backend/internal/service"

	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	log           *logrus.Logger
	donorRepo     repository.DonorRepository
	requestRepo   repository.BloodRequestRepository
	inventoryRepo repository.InventoryRepository
	statsCache    *service.StatsCache
}

func NewDashboardUsecase(
	log *logrus.Logger,
	donorRepo repository.DonorRepository,
	requestRepo repository.BloodRequestRepository,
	inventoryRepo repository.InventoryRepository,
	statsCache *service.StatsCache,
) DashboardUsecase {
	return &dashboardUsecase{
		log:           log,
		donorRepo:     donorRepo,
		requestRepo:   requestRepo,
		inventoryRepo: inventoryRepo,
		statsCache:    statsCache,
	}
}

// Stats fans out independent counts across the stores; no consistent
// snapshot is guaranteed. Results are served from a short-lived Redis
// cache when available.
func (u *dashboardUsecase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if u.statsCache != nil {
		if cached, err := u.statsCache.Get(ctx); err != nil {
			u.log.Warnf("Failed to read stats cache: %+v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	totalDonors, err := u.donorRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count donors: %+v", err)
		return nil, err
	}

	totalRequests, err := u.requestRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count requests: %+v", err)
		return nil, err
	}

	pendingRequests, err := u.requestRepo.CountByStatus(ctx, entity.RequestStatusPending)
	if err != nil {
		u.log.Warnf("Failed to count pending requests: %+v", err)
		return nil, err
	}

	openEmergencies, err := u.requestRepo.CountOpenEmergencies(ctx)
	if err != nil {
		u.log.Warnf("Failed to count open emergencies: %+v", err)
		return nil, err
	}

	lowStockCount, err := u.inventoryRepo.CountBelowThreshold(ctx)
	if err != nil {
		u.log.Warnf("Failed to count low stock records: %+v", err)
		return nil, err
	}

	inventory, err := u.inventoryRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list inventory for stats: %+v", err)
		return nil, err
	}

	stats := &dto.DashboardStatsResponse{
		TotalDonors:      totalDonors,
		TotalRequests:    totalRequests,
		PendingRequests:  pendingRequests,
		OpenEmergencies:  openEmergencies,
		LowStockCount:    lowStockCount,
		InventorySummary: converter.InventoriesToResponse(inventory),
	}

	if u.statsCache != nil {
		if err := u.statsCache.Set(ctx, stats); err != nil {
			u.log.Warnf("Failed to write stats cache: %+v", err)
		}
	}

	return stats, nil
}

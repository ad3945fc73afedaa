package repository

import (
	"context"

	"blood-bank-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type BloodRequestRepository interface {
	Create(ctx context.Context, request *entity.BloodRequest) error
	// FindAll returns a page ordered by submission time descending. An
	// empty status applies no filter.
	FindAll(ctx context.Context, limit, offset int, status string) ([]entity.BloodRequest, int64, error)
	// FindByID returns (nil, nil) when no request matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error)
	Update(ctx context.Context, request *entity.BloodRequest) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	// CountOpenEmergencies counts emergency requests still pending or
	// approved.
	CountOpenEmergencies(ctx context.Context) (int64, error)
}

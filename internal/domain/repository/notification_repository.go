package repository

import (
	"context"

	"blood-bank-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	// FindByAudiences returns a page of notifications addressed to any of
	// the given audiences, newest first, along with the total count.
	FindByAudiences(ctx context.Context, audiences []string, limit, offset int) ([]entity.Notification, int64, error)
	// FindByID returns (nil, nil) when no notification matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) error
}

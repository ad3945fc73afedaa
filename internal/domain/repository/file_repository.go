package repository

import (
	"context"

	"blood-bank-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type FileRepository interface {
	Create(ctx context.Context, record *entity.FileRecord) error
	// FindByID returns (nil, nil) when no record matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FileRecord, error)
}

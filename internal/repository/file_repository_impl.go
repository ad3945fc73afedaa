package repository

import (
	"context"
	"errors"

	"blood-bank-backend/internal/domain/entity"
	domainRepo "blood-bank-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) domainRepo.FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(ctx context.Context, record *entity.FileRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *fileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FileRecord, error) {
	var record entity.FileRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

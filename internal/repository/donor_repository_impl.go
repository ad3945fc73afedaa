package repository

import (
	"context"

	"blood-bank-backend/internal/domain/entity"
	domainRepo "blood-bank-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type donorRepository struct {
	db *gorm.DB
}

func NewDonorRepository(db *gorm.DB) domainRepo.DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) Create(ctx context.Context, donor *entity.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

func (r *donorRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Donor, int64, error) {
	var donors []entity.Donor
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Donor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("created_at DESC").Find(&donors).Error; err != nil {
		return nil, 0, err
	}

	return donors, total, nil
}

func (r *donorRepository) FindAvailableByBloodGroup(ctx context.Context, bloodGroup string) ([]entity.Donor, error) {
	var donors []entity.Donor
	err := r.db.WithContext(ctx).
		Where("blood_group = ? AND is_available = ?", bloodGroup, true).
		Find(&donors).Error
	if err != nil {
		return nil, err
	}
	return donors, nil
}

func (r *donorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Donor{}).Count(&total).Error
	return total, err
}

package repository

import (
	"context"
	"errors"

	"blood-bank-backend/internal/domain/entity"
	domainRepo "blood-bank-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bloodRequestRepository struct {
	db *gorm.DB
}

func NewBloodRequestRepository(db *gorm.DB) domainRepo.BloodRequestRepository {
	return &bloodRequestRepository{db: db}
}

func (r *bloodRequestRepository) Create(ctx context.Context, request *entity.BloodRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *bloodRequestRepository) FindAll(ctx context.Context, limit, offset int, status string) ([]entity.BloodRequest, int64, error) {
	var requests []entity.BloodRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.BloodRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *bloodRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	var request entity.BloodRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *bloodRequestRepository) Update(ctx context.Context, request *entity.BloodRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *bloodRequestRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.BloodRequest{}).Count(&total).Error
	return total, err
}

func (r *bloodRequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.BloodRequest{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}

func (r *bloodRequestRepository) CountOpenEmergencies(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.BloodRequest{}).
		Where("is_emergency = ? AND status IN ?", true, []string{entity.RequestStatusPending, entity.RequestStatusApproved}).
		Count(&total).Error
	return total, err
}

package repository

import (
	"context"
	"errors"
	"time"

	"blood-bank-backend/internal/domain/entity"
	domainRepo "blood-bank-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, record *entity.BloodInventory) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *inventoryRepository) CreateIfAbsent(ctx context.Context, record *entity.BloodInventory) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blood_group"}},
		DoNothing: true,
	}).Create(record).Error
}

func (r *inventoryRepository) FindAll(ctx context.Context) ([]entity.BloodInventory, error) {
	var records []entity.BloodInventory
	err := r.db.WithContext(ctx).Order("blood_group ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *inventoryRepository) FindByBloodGroup(ctx context.Context, bloodGroup string) (*entity.BloodInventory, error) {
	var record entity.BloodInventory
	err := r.db.WithContext(ctx).Where("blood_group = ?", bloodGroup).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *inventoryRepository) UpdateFields(ctx context.Context, bloodGroup string, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.BloodInventory{}).
		Where("blood_group = ?", bloodGroup).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// IncrementDonors relies on a single INSERT ... ON CONFLICT statement so
// concurrent donor registrations for the same blood group cannot lose
// updates.
func (r *inventoryRepository) IncrementDonors(ctx context.Context, bloodGroup string) error {
	record := &entity.BloodInventory{
		BloodGroup:        bloodGroup,
		DonorsCount:       1,
		LowStockThreshold: entity.DefaultLowStockThreshold,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "blood_group"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"donors_count": gorm.Expr("blood_inventory.donors_count + 1"),
			"last_updated": time.Now(),
		}),
	}).Create(record).Error
}

// DecrementUnits uses an atomic in-place decrement; no floor is applied,
// so the count may go negative.
func (r *inventoryRepository) DecrementUnits(ctx context.Context, bloodGroup string, units int) error {
	return r.db.WithContext(ctx).Model(&entity.BloodInventory{}).
		Where("blood_group = ?", bloodGroup).
		Updates(map[string]interface{}{
			"units_available": gorm.Expr("units_available - ?", units),
			"last_updated":    time.Now(),
		}).Error
}

func (r *inventoryRepository) FindBelowThreshold(ctx context.Context) ([]entity.BloodInventory, error) {
	var records []entity.BloodInventory
	err := r.db.WithContext(ctx).
		Where("units_available < low_stock_threshold").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *inventoryRepository) CountBelowThreshold(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.BloodInventory{}).
		Where("units_available < low_stock_threshold").
		Count(&total).Error
	return total, err
}

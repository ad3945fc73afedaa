package repository

import (
	"context"

	"blood-bank-backend/internal/domain/entity"
)

type InventoryRepository interface {
	Create(ctx context.Context, record *entity.BloodInventory) error
	// CreateIfAbsent inserts a record unless one already exists for the
	// blood group. Existing records are left untouched.
	CreateIfAbsent(ctx context.Context, record *entity.BloodInventory) error
	FindAll(ctx context.Context) ([]entity.BloodInventory, error)
	// FindByBloodGroup returns (nil, nil) when no record matches.
	FindByBloodGroup(ctx context.Context, bloodGroup string) (*entity.BloodInventory, error)
	// UpdateFields applies a partial update to the record for the blood
	// group and reports how many rows were touched.
	UpdateFields(ctx context.Context, bloodGroup string, fields map[string]interface{}) (int64, error)
	// IncrementDonors bumps the donor count by one with a single atomic
	// statement, creating the record when absent.
	IncrementDonors(ctx context.Context, bloodGroup string) error
	// DecrementUnits subtracts units with a single atomic statement. The
	// count is allowed to go negative.
	DecrementUnits(ctx context.Context, bloodGroup string, units int) error
	FindBelowThreshold(ctx context.Context) ([]entity.BloodInventory, error)
	CountBelowThreshold(ctx context.Context) (int64, error)
}

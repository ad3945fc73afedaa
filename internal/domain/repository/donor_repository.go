package repository

import (
	"context"

	"blood-bank-backend/internal/domain/entity"
)

type DonorRepository interface {
	Create(ctx context.Context, donor *entity.Donor) error
	// FindAll returns a page ordered by registration time descending,
	// along with the total record count.
	FindAll(ctx context.Context, limit, offset int) ([]entity.Donor, int64, error)
	// FindAvailableByBloodGroup returns donors of the given blood group
	// whose availability flag is set.
	FindAvailableByBloodGroup(ctx context.Context, bloodGroup string) ([]entity.Donor, error)
	Count(ctx context.Context) (int64, error)
}

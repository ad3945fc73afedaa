package usecase

import (
	"context"
	"errors"

	"blood-bank-backend/internal/converter"
	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/domain/entity"
	"blood-bank-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var ErrRollNumberExists = errors.New("roll number already registered")

type DonorUsecase interface {
	Register(ctx context.Context, req *dto.RegisterDonorRequest) (*dto.DonorResponse, error)
	List(ctx context.Context, page, limit int) ([]dto.DonorResponse, int64, error)
	ListByBloodType(ctx context.Context, bloodGroup string) ([]dto.DonorResponse, error)
}

type donorUsecase struct {
	log           *logrus.Logger
	donorRepo     repository.DonorRepository
	inventoryRepo repository.InventoryRepository
}

func NewDonorUsecase(
	log *logrus.Logger,
	donorRepo repository.DonorRepository,
	inventoryRepo repository.InventoryRepository,
) DonorUsecase {
	return &donorUsecase{
		log:           log,
		donorRepo:     donorRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (u *donorUsecase) Register(ctx context.Context, req *dto.RegisterDonorRequest) (*dto.DonorResponse, error) {
	available := true
	donor := &entity.Donor{
		FullName:        req.FullName,
		Branch:          req.Branch,
		RollNumber:      req.RollNumber,
		BloodGroup:      req.BloodGroup,
		Email:           req.Email,
		Phone:           req.Phone,
		IsAvailable:     &available,
		DonationHistory: datatypes.JSON("[]"),
	}

	if err := u.donorRepo.Create(ctx, donor); err != nil {
		if isDuplicateKeyError(err, "roll_number") {
			return nil, ErrRollNumberExists
		}
		u.log.Warnf("Failed to create donor: %+v", err)
		return nil, err
	}

	// Best-effort side effect: a failure here leaves the donor count
	// understated but does not fail the registration.
	if err := u.inventoryRepo.IncrementDonors(ctx, donor.BloodGroup); err != nil {
		u.log.Warnf("Failed to increment donor count for %s: %+v", donor.BloodGroup, err)
	}

	return converter.DonorToResponse(donor), nil
}

func (u *donorUsecase) List(ctx context.Context, page, limit int) ([]dto.DonorResponse, int64, error) {
	offset := (page - 1) * limit

	donors, total, err := u.donorRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list donors: %+v", err)
		return nil, 0, err
	}

	return converter.DonorsToResponse(donors), total, nil
}

func (u *donorUsecase) ListByBloodType(ctx context.Context, bloodGroup string) ([]dto.DonorResponse, error) {
	donors, err := u.donorRepo.FindAvailableByBloodGroup(ctx, bloodGroup)
	if err != nil {
		u.log.Warnf("Failed to list donors by blood type: %+v", err)
		return nil, err
	}

	return converter.DonorsToResponse(donors), nil
}

package converter

import (
	"encoding/json"

	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/domain/entity"
)

// DonorToResponse converts a Donor entity to its response DTO, decoding
// the JSONB donation history.
func DonorToResponse(donor *entity.Donor) *dto.DonorResponse {
	if donor == nil {
		return nil
	}

	history := []dto.DonationEventResponse{}
	if len(donor.DonationHistory) > 0 {
		// A malformed history column yields an empty list rather than an error.
		_ = json.Unmarshal(donor.DonationHistory, &history)
	}

	return &dto.DonorResponse{
		ID:              donor.ID,
		FullName:        donor.FullName,
		Branch:          donor.Branch,
		RollNumber:      donor.RollNumber,
		BloodGroup:      donor.BloodGroup,
		Email:           donor.Email,
		Phone:           donor.Phone,
		IsAvailable:     donor.IsAvailable,
		DonationHistory: history,
		CreatedAt:       donor.CreatedAt,
	}
}

// DonorsToResponse converts a slice of Donor entities.
func DonorsToResponse(donors []entity.Donor) []dto.DonorResponse {
	responses := make([]dto.DonorResponse, 0, len(donors))
	for i := range donors {
		responses = append(responses, *DonorToResponse(&donors[i]))
	}
	return responses
}

package converter

import (
	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/domain/entity"
)

// BloodRequestToResponse converts a BloodRequest entity to its response DTO.
func BloodRequestToResponse(request *entity.BloodRequest) *dto.BloodRequestResponse {
	if request == nil {
		return nil
	}

	return &dto.BloodRequestResponse{
		ID:             request.ID,
		PatientName:    request.PatientName,
		PatientAge:     request.PatientAge,
		PatientGender:  request.PatientGender,
		BloodGroup:     request.BloodGroup,
		UnitsRequired:  request.UnitsRequired,
		HospitalName:   request.HospitalName,
		Reason:         request.Reason,
		RequesterRoll:  request.RequesterRoll,
		RequesterEmail: request.RequesterEmail,
		RequesterPhone: request.RequesterPhone,
		IsEmergency:    request.IsEmergency,
		ReportFileID:   request.ReportFileID,
		Status:         request.Status,
		AdminNotes:     request.AdminNotes,
		CreatedAt:      request.CreatedAt,
		UpdatedAt:      request.UpdatedAt,
	}
}

// BloodRequestsToResponse converts a slice of BloodRequest entities.
func BloodRequestsToResponse(requests []entity.BloodRequest) []dto.BloodRequestResponse {
	responses := make([]dto.BloodRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *BloodRequestToResponse(&requests[i]))
	}
	return responses
}

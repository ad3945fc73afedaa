package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBloodRequest is populated from multipart form fields; numeric
// values are coerced from their text representation by the handler.
type CreateBloodRequest struct {
	PatientName    string `json:"patient_name" validate:"required"`
	PatientAge     int    `json:"patient_age"`
	PatientGender  string `json:"patient_gender" validate:"omitempty"`
	BloodGroup     string `json:"blood_group" validate:"required"`
	UnitsRequired  int    `json:"units_required"`
	HospitalName   string `json:"hospital_name" validate:"required"`
	Reason         string `json:"reason"`
	RequesterRoll  string `json:"requester_roll"`
	RequesterEmail string `json:"requester_email" validate:"omitempty,email"`
	RequesterPhone string `json:"requester_phone"`
	IsEmergency    bool   `json:"is_emergency"`
}

type UpdateRequestStatusRequest struct {
	Status     string `json:"status" validate:"required"`
	AdminNotes string `json:"admin_notes"`
}

type BloodRequestResponse struct {
	ID             uuid.UUID  `json:"id"`
	PatientName    string     `json:"patient_name"`
	PatientAge     int        `json:"patient_age"`
	PatientGender  string     `json:"patient_gender"`
	BloodGroup     string     `json:"blood_group"`
	UnitsRequired  int        `json:"units_required"`
	HospitalName   string     `json:"hospital_name"`
	Reason         string     `json:"reason"`
	RequesterRoll  string     `json:"requester_roll"`
	RequesterEmail string     `json:"requester_email"`
	RequesterPhone string     `json:"requester_phone"`
	IsEmergency    bool       `json:"is_emergency"`
	ReportFileID   *uuid.UUID `json:"report_file_id,omitempty"`
	Status         string     `json:"status"`
	AdminNotes     string     `json:"admin_notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

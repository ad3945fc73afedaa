package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterDonorRequest struct {
	FullName   string `json:"full_name" validate:"required,min=2"`
	Branch     string `json:"branch" validate:"omitempty,max=100"`
	RollNumber string `json:"roll_number" validate:"required"`
	BloodGroup string `json:"blood_group" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,min=7,max=20"`
}

type DonationEventResponse struct {
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Units    int       `json:"units"`
}

type DonorResponse struct {
	ID              uuid.UUID               `json:"id"`
	FullName        string                  `json:"full_name"`
	Branch          string                  `json:"branch"`
	RollNumber      string                  `json:"roll_number"`
	BloodGroup      string                  `json:"blood_group"`
	Email           string                  `json:"email"`
	Phone           string                  `json:"phone"`
	IsAvailable     *bool                   `json:"is_available"`
	DonationHistory []DonationEventResponse `json:"donation_history"`
	CreatedAt       time.Time               `json:"created_at"`
}

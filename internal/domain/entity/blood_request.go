package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusFulfilled = "fulfilled"
	RequestStatusRejected  = "rejected"
)

// BloodRequest represents a request for blood units, optionally carrying
// an attached hospital report file.
type BloodRequest struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientName    string     `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientAge     int        `json:"patient_age"`
	PatientGender  string     `gorm:"type:varchar(10)" json:"patient_gender"`
	BloodGroup     string     `gorm:"type:varchar(5);not null;index" json:"blood_group"`
	UnitsRequired  int        `gorm:"not null;default:1" json:"units_required"`
	HospitalName   string     `gorm:"type:varchar(255);not null" json:"hospital_name"`
	Reason         string     `gorm:"type:text" json:"reason"`
	RequesterRoll  string     `gorm:"type:varchar(50)" json:"requester_roll"`
	RequesterEmail string     `gorm:"type:varchar(255)" json:"requester_email"`
	RequesterPhone string     `gorm:"type:varchar(20)" json:"requester_phone"`
	IsEmergency    bool       `gorm:"not null;default:false;index" json:"is_emergency"`
	ReportFileID   *uuid.UUID `gorm:"type:uuid" json:"report_file_id,omitempty"`
	Status         string     `gorm:"type:varchar(30);not null;default:'pending';index" json:"status"`
	AdminNotes     string     `gorm:"type:text" json:"admin_notes"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BloodRequest) TableName() string {
	return "blood_requests"
}

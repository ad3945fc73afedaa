package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DonationEvent is one entry of a donor's donation history, stored as JSONB.
type DonationEvent struct {
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Units    int       `json:"units"`
}

// Donor represents a registered blood donor
type Donor struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName        string         `gorm:"type:varchar(255);not null" json:"full_name"`
	Branch          string         `gorm:"type:varchar(100)" json:"branch"`
	RollNumber      string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"roll_number"`
	BloodGroup      string         `gorm:"type:varchar(5);not null;index" json:"blood_group"`
	Email           string         `gorm:"type:varchar(255)" json:"email"`
	Phone           string         `gorm:"type:varchar(20)" json:"phone"`
	IsAvailable     *bool          `gorm:"not null;default:true;index" json:"is_available"`
	DonationHistory datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"donation_history"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Donor) TableName() string {
	return "donors"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationEmergencyRequest = "emergency_request"
	NotificationLowStock         = "low_stock"
	NotificationDonationNeeded   = "donation_needed"
)

const (
	AudienceAll    = "all"
	AudienceAdmins = "admins"
	AudienceDonors = "donors"
)

// Notification is an append-only system event record. The related id is a
// non-owning reference used purely for client-side linking.
type Notification struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Type        string     `gorm:"type:varchar(50);not null" json:"type"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Message     string     `gorm:"type:text" json:"message"`
	IsRead      bool       `gorm:"not null;default:false;index" json:"is_read"`
	Audience    string     `gorm:"type:varchar(20);not null;default:'all';index" json:"audience"`
	RelatedID   *uuid.UUID `gorm:"type:uuid" json:"related_id,omitempty"`
	RelatedType string     `gorm:"type:varchar(30)" json:"related_type,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

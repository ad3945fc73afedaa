package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLowStockThreshold is applied to records created without an
// explicit threshold.
const DefaultLowStockThreshold = 10

// BloodInventory holds the unit count for a single blood group. At most
// one record exists per blood group.
type BloodInventory struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BloodGroup        string    `gorm:"type:varchar(5);uniqueIndex;not null" json:"blood_group"`
	UnitsAvailable    int       `gorm:"not null;default:0" json:"units_available"`
	DonorsCount       int       `gorm:"not null;default:0" json:"donors_count"`
	LowStockThreshold int       `gorm:"not null;default:10" json:"low_stock_threshold"`
	LastUpdated       time.Time `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

func (BloodInventory) TableName() string {
	return "blood_inventory"
}

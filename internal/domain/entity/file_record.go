package entity

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord is the metadata row for an uploaded attachment; the payload
// itself lives in the object store under ObjectKey.
type FileRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FileName    string    `gorm:"type:varchar(255);not null" json:"file_name"`
	ContentType string    `gorm:"type:varchar(100);not null" json:"content_type"`
	Size        int64     `gorm:"not null;default:0" json:"size"`
	ObjectKey   string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"object_key"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FileRecord) TableName() string {
	return "files"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media is an uploaded file. Filename is the object key in the blob store.
type Media struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Filename     string     `json:"filename" db:"filename" gorm:"type:text;not null"`
	OriginalName string     `json:"originalName" db:"original_name" gorm:"type:text;not null"`
	MimeType     string     `json:"mimeType" db:"mime_type" gorm:"type:text;not null"`
	Size         int64      `json:"size" db:"size" gorm:"type:bigint;not null"`
	URL          string     `json:"url" db:"url" gorm:"type:text;not null"`
	UploadedBy   *uuid.UUID `json:"uploadedBy" db:"uploaded_by" gorm:"type:uuid;index:idx_media_uploaded_by"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at" gorm:"not null;index:idx_media_created_at"`

	Uploader *User `json:"-" gorm:"foreignKey:UploadedBy;references:ID;constraint:OnDelete:SET NULL"`
}

func (Media) TableName() string { return "media" }

func (m *Media) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

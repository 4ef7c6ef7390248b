package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Newsletter is one subscriber address.
type Newsletter struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_newsletter_email"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

func (Newsletter) TableName() string { return "newsletter" }

func (n *Newsletter) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Status == "" {
		n.Status = NewsletterStatusActive
	}
	return nil
}

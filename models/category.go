package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultCategoryColor = "#0066FF"

// Category groups blog posts and projects.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_categories_name"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_categories_slug"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	Color       string    `json:"color" db:"color" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultReadTime = 5

// BlogPost represents a complete blog post with metadata
type BlogPost struct {
	ID             uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title          string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug           string                      `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_blog_posts_slug"`
	Content        string                      `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt        *string                     `json:"excerpt" db:"excerpt" gorm:"type:text"`
	FeaturedImage  *string                     `json:"featuredImage" db:"featured_image" gorm:"type:text"`
	CategoryID     *uuid.UUID                  `json:"categoryId" db:"category_id" gorm:"type:uuid;index:idx_blog_posts_category_id"`
	AuthorID       *uuid.UUID                  `json:"authorId" db:"author_id" gorm:"type:uuid;index:idx_blog_posts_author_id"`
	Status         string                      `json:"status" db:"status" gorm:"type:text;not null;index:idx_blog_posts_status"`
	Views          int                         `json:"views" db:"views" gorm:"type:integer;not null"`
	ReadTime       int                         `json:"readTime" db:"read_time" gorm:"type:integer;not null"`
	Tags           datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	SeoTitle       *string                     `json:"seoTitle" db:"seo_title" gorm:"type:text"`
	SeoDescription *string                     `json:"seoDescription" db:"seo_description" gorm:"type:text"`
	CreatedAt      time.Time                   `json:"createdAt" db:"created_at" gorm:"not null;index:idx_blog_posts_created_at"`
	UpdatedAt      time.Time                   `json:"updatedAt" db:"updated_at" gorm:"not null"`
	PublishedAt    *time.Time                  `json:"publishedAt" db:"published_at"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Author   *User     `json:"-" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:SET NULL"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.ReadTime <= 0 {
		p.ReadTime = EstimateReadTime(p.Content)
	}
	p.Tags = NormalizeTags(p.Tags)
	if p.Status == StatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	return nil
}

// BlogPostPatch is a partial update; nil fields are left untouched.
type BlogPostPatch struct {
	Title          *string    `json:"title" validate:"omitempty,min=1,max=300"`
	Slug           *string    `json:"slug" validate:"omitempty,slug"`
	Content        *string    `json:"content" validate:"omitempty,min=1"`
	Excerpt        *string    `json:"excerpt"`
	FeaturedImage  *string    `json:"featuredImage"`
	CategoryID     *uuid.UUID `json:"categoryId"`
	Status         *string    `json:"status" validate:"omitempty,oneof=draft published"`
	ReadTime       *int       `json:"readTime" validate:"omitempty,min=1"`
	Tags           *[]string  `json:"tags"`
	SeoTitle       *string    `json:"seoTitle"`
	SeoDescription *string    `json:"seoDescription"`
	PublishedAt    *time.Time `json:"publishedAt"`
}

// Columns maps the set fields of the patch to column names.
func (p BlogPostPatch) Columns() map[string]any {
	cols := map[string]any{}
	setIf(cols, "title", p.Title)
	setIf(cols, "slug", p.Slug)
	setIf(cols, "content", p.Content)
	setIf(cols, "excerpt", p.Excerpt)
	setIf(cols, "featured_image", p.FeaturedImage)
	setIf(cols, "category_id", p.CategoryID)
	setIf(cols, "status", p.Status)
	setIf(cols, "read_time", p.ReadTime)
	setIf(cols, "seo_title", p.SeoTitle)
	setIf(cols, "seo_description", p.SeoDescription)
	setIf(cols, "published_at", p.PublishedAt)
	if p.Tags != nil {
		cols["tags"] = datatypes.JSONSlice[string](NormalizeTags(*p.Tags))
	}
	return cols
}

// Publishes reports whether the patch moves the entity to the published state.
func (p BlogPostPatch) Publishes() bool {
	return p.Status != nil && *p.Status == StatusPublished && p.PublishedAt == nil
}

func setIf[T any](cols map[string]any, column string, value *T) {
	if value != nil {
		cols[column] = *value
	}
}

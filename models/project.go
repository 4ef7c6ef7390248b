package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project represents a complete electronics project with build metadata
type Project struct {
	ID             uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title          string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug           string                      `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_projects_slug"`
	Description    string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Content        string                      `json:"content" db:"content" gorm:"type:text;not null"`
	FeaturedImage  *string                     `json:"featuredImage" db:"featured_image" gorm:"type:text"`
	CategoryID     *uuid.UUID                  `json:"categoryId" db:"category_id" gorm:"type:uuid;index:idx_projects_category_id"`
	AuthorID       *uuid.UUID                  `json:"authorId" db:"author_id" gorm:"type:uuid;index:idx_projects_author_id"`
	Difficulty     string                      `json:"difficulty" db:"difficulty" gorm:"type:text;not null"`
	Status         string                      `json:"status" db:"status" gorm:"type:text;not null;index:idx_projects_status"`
	Views          int                         `json:"views" db:"views" gorm:"type:integer;not null"`
	EstimatedTime  *string                     `json:"estimatedTime" db:"estimated_time" gorm:"type:text"`
	Components     datatypes.JSONSlice[string] `json:"components" db:"components"`
	Tools          datatypes.JSONSlice[string] `json:"tools" db:"tools"`
	Tags           datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	GithubURL      *string                     `json:"githubUrl" db:"github_url" gorm:"type:text"`
	DemoURL        *string                     `json:"demoUrl" db:"demo_url" gorm:"type:text"`
	SeoTitle       *string                     `json:"seoTitle" db:"seo_title" gorm:"type:text"`
	SeoDescription *string                     `json:"seoDescription" db:"seo_description" gorm:"type:text"`
	CreatedAt      time.Time                   `json:"createdAt" db:"created_at" gorm:"not null;index:idx_projects_created_at"`
	UpdatedAt      time.Time                   `json:"updatedAt" db:"updated_at" gorm:"not null"`
	PublishedAt    *time.Time                  `json:"publishedAt" db:"published_at"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Author   *User     `json:"-" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:SET NULL"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.Difficulty == "" {
		p.Difficulty = DifficultyBeginner
	}
	p.Components = NormalizeTags(p.Components)
	p.Tools = NormalizeTags(p.Tools)
	p.Tags = NormalizeTags(p.Tags)
	if p.Status == StatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	return nil
}

// ProjectPatch is a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Title          *string    `json:"title" validate:"omitempty,min=1,max=300"`
	Slug           *string    `json:"slug" validate:"omitempty,slug"`
	Description    *string    `json:"description" validate:"omitempty,min=1"`
	Content        *string    `json:"content" validate:"omitempty,min=1"`
	FeaturedImage  *string    `json:"featuredImage"`
	CategoryID     *uuid.UUID `json:"categoryId"`
	Difficulty     *string    `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Status         *string    `json:"status" validate:"omitempty,oneof=draft published"`
	EstimatedTime  *string    `json:"estimatedTime"`
	Components     *[]string  `json:"components"`
	Tools          *[]string  `json:"tools"`
	Tags           *[]string  `json:"tags"`
	GithubURL      *string    `json:"githubUrl" validate:"omitempty,url"`
	DemoURL        *string    `json:"demoUrl" validate:"omitempty,url"`
	SeoTitle       *string    `json:"seoTitle"`
	SeoDescription *string    `json:"seoDescription"`
	PublishedAt    *time.Time `json:"publishedAt"`
}

// Columns maps the set fields of the patch to column names.
func (p ProjectPatch) Columns() map[string]any {
	cols := map[string]any{}
	setIf(cols, "title", p.Title)
	setIf(cols, "slug", p.Slug)
	setIf(cols, "description", p.Description)
	setIf(cols, "content", p.Content)
	setIf(cols, "featured_image", p.FeaturedImage)
	setIf(cols, "category_id", p.CategoryID)
	setIf(cols, "difficulty", p.Difficulty)
	setIf(cols, "status", p.Status)
	setIf(cols, "estimated_time", p.EstimatedTime)
	setIf(cols, "github_url", p.GithubURL)
	setIf(cols, "demo_url", p.DemoURL)
	setIf(cols, "seo_title", p.SeoTitle)
	setIf(cols, "seo_description", p.SeoDescription)
	setIf(cols, "published_at", p.PublishedAt)
	if p.Components != nil {
		cols["components"] = datatypes.JSONSlice[string](NormalizeTags(*p.Components))
	}
	if p.Tools != nil {
		cols["tools"] = datatypes.JSONSlice[string](NormalizeTags(*p.Tools))
	}
	if p.Tags != nil {
		cols["tags"] = datatypes.JSONSlice[string](NormalizeTags(*p.Tags))
	}
	return cols
}

// Publishes reports whether the patch moves the entity to the published state.
func (p ProjectPatch) Publishes() bool {
	return p.Status != nil && *p.Status == StatusPublished && p.PublishedAt == nil
}

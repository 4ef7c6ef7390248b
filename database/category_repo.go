package database

import (
	"context"

	"github.com/rpupo63/electronics-site-backend/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// GetCategories returns every category ordered by name
func (r *CategoryRepo) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepo) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return firstOrNil[models.Category](r.db.WithContext(ctx), "slug = ?", slug)
}

func (r *CategoryRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

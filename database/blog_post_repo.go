package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/electronics-site-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// GetBlogPosts returns posts of any status, newest first
func (r *BlogPostRepo) GetBlogPosts(ctx context.Context, page Page) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	err := r.db.WithContext(ctx).Scopes(paginate(page)).Find(&posts).Error
	return posts, err
}

// GetPublishedBlogPosts returns only published posts, newest first
func (r *BlogPostRepo) GetPublishedBlogPosts(ctx context.Context, page Page) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusPublished).
		Scopes(paginate(page)).
		Find(&posts).Error
	return posts, err
}

func (r *BlogPostRepo) GetBlogPost(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	return firstOrNil[models.BlogPost](r.db.WithContext(ctx), "id = ?", id)
}

func (r *BlogPostRepo) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return firstOrNil[models.BlogPost](r.db.WithContext(ctx), "slug = ?", slug)
}

// CreateBlogPost inserts a post; defaults are filled by the model hook
func (r *BlogPostRepo) CreateBlogPost(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// UpdateBlogPost applies the set fields of patch and returns the refreshed
// row, or nil when no post has that id.
func (r *BlogPostRepo) UpdateBlogPost(ctx context.Context, id uuid.UUID, patch models.BlogPostPatch) (*models.BlogPost, error) {
	var updated *models.BlogPost
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := firstOrNil[models.BlogPost](tx, "id = ?", id)
		if err != nil || existing == nil {
			return err
		}

		cols := patch.Columns()
		now := time.Now()
		cols["updated_at"] = now
		if patch.Publishes() && existing.PublishedAt == nil {
			cols["published_at"] = now
		}
		if err := tx.Model(&models.BlogPost{}).Where("id = ?", id).Updates(cols).Error; err != nil {
			return err
		}

		updated, err = firstOrNil[models.BlogPost](tx, "id = ?", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBlogPost reports whether a row was removed
func (r *BlogPostRepo) DeleteBlogPost(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BlogPost{})
	return res.RowsAffected > 0, res.Error
}

// IncrementBlogPostViews bumps the counter in a single UPDATE so concurrent
// readers never lose an increment.
func (r *BlogPostRepo) IncrementBlogPostViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

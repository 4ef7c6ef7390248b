package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/electronics-site-backend/models"
	"gorm.io/gorm"
)

type MediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) *MediaRepo {
	return &MediaRepo{db}
}

func (r *MediaRepo) GetMedia(ctx context.Context, page Page) ([]models.Media, error) {
	media := []models.Media{}
	err := r.db.WithContext(ctx).Scopes(paginate(page)).Find(&media).Error
	return media, err
}

func (r *MediaRepo) GetMediaItem(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	return firstOrNil[models.Media](r.db.WithContext(ctx), "id = ?", id)
}

// UploadMedia records metadata for an object already written to the blob store
func (r *MediaRepo) UploadMedia(ctx context.Context, media *models.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *MediaRepo) DeleteMedia(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Media{})
	return res.RowsAffected > 0, res.Error
}

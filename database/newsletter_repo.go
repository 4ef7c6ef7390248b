package database

import (
	"context"
	"strings"

	"github.com/rpupo63/electronics-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewsletterRepo struct {
	db *gorm.DB
}

func NewNewsletterRepo(db *gorm.DB) *NewsletterRepo {
	return &NewsletterRepo{db}
}

// AddToNewsletter subscribes an address. Subscribing an address that is
// already present leaves the existing row untouched and returns it.
func (r *NewsletterRepo) AddToNewsletter(ctx context.Context, email string) (*models.Newsletter, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	db := r.db.WithContext(ctx)

	subscriber := models.Newsletter{Email: email}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&subscriber).Error
	if err != nil {
		return nil, err
	}

	return firstOrNil[models.Newsletter](db, "email = ?", email)
}

// GetNewsletterSubscribers returns active subscribers, newest first
func (r *NewsletterRepo) GetNewsletterSubscribers(ctx context.Context) ([]models.Newsletter, error) {
	subscribers := []models.Newsletter{}
	err := r.db.WithContext(ctx).
		Where("status = ?", models.NewsletterStatusActive).
		Scopes(newestFirst).
		Find(&subscribers).Error
	return subscribers, err
}

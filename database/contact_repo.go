package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/electronics-site-backend/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// GetContacts returns contact messages, newest first
func (r *ContactRepo) GetContacts(ctx context.Context, page Page) ([]models.Contact, error) {
	contacts := []models.Contact{}
	err := r.db.WithContext(ctx).Scopes(paginate(page)).Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepo) CreateContact(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// UpdateContactStatus sets the triage status and reports whether the contact exists
func (r *ContactRepo) UpdateContactStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected > 0, res.Error
}

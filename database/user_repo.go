package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/electronics-site-backend/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// GetUser returns a user by id, or nil when absent
func (r *UserRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return firstOrNil[models.User](r.db.WithContext(ctx), "id = ?", id)
}

func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return firstOrNil[models.User](r.db.WithContext(ctx), "username = ?", username)
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return firstOrNil[models.User](r.db.WithContext(ctx), "email = ?", email)
}

// CreateUser inserts a user. Password must already be hashed.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

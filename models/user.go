package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleAdmin = "admin"

// User is an admin account. Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Username  string    `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex:idx_users_username"`
	Password  string    `json:"-" db:"password" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Role      string    `json:"role" db:"role" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleAdmin
	}
	return nil
}

package database

import (
	"errors"

	"gorm.io/gorm"
)

// newestFirst orders listings by creation time with id as tiebreaker so
// pages stay stable when timestamps collide.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

func paginate(page Page) func(db *gorm.DB) *gorm.DB {
	page = page.normalize()
	return func(db *gorm.DB) *gorm.DB {
		return newestFirst(db).Limit(page.Limit).Offset(page.Offset)
	}
}

// firstOrNil runs First and turns a missing row into (nil, nil).
func firstOrNil[T any](db *gorm.DB, query string, args ...any) (*T, error) {
	var row T
	err := db.Where(query, args...).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

package database

import (
	"context"

	"github.com/rpupo63/electronics-site-backend/models"
	"gorm.io/gorm"
)

type AnalyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db}
}

type contentTotals struct {
	Count int64
	Views int64
}

// GetAnalytics computes the dashboard counters inside one transaction so the
// four numbers come from the same snapshot of committed data.
func (r *AnalyticsRepo) GetAnalytics(ctx context.Context) (*Analytics, error) {
	var out Analytics
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var posts, projects contentTotals
		if err := tx.Model(&models.BlogPost{}).
			Select("COUNT(*) AS count, COALESCE(SUM(views), 0) AS views").
			Scan(&posts).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Project{}).
			Select("COUNT(*) AS count, COALESCE(SUM(views), 0) AS views").
			Scan(&projects).Error; err != nil {
			return err
		}
		var contacts int64
		if err := tx.Model(&models.Contact{}).Count(&contacts).Error; err != nil {
			return err
		}

		out = Analytics{
			TotalPosts:    posts.Count,
			TotalProjects: projects.Count,
			TotalViews:    posts.Views + projects.Views,
			TotalContacts: contacts,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/electronics-site-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetProjects returns projects of any status, newest first
func (r *ProjectRepo) GetProjects(ctx context.Context, page Page) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.WithContext(ctx).Scopes(paginate(page)).Find(&projects).Error
	return projects, err
}

// GetPublishedProjects returns only published projects, newest first
func (r *ProjectRepo) GetPublishedProjects(ctx context.Context, page Page) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusPublished).
		Scopes(paginate(page)).
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepo) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return firstOrNil[models.Project](r.db.WithContext(ctx), "id = ?", id)
}

func (r *ProjectRepo) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return firstOrNil[models.Project](r.db.WithContext(ctx), "slug = ?", slug)
}

// CreateProject inserts a project; defaults are filled by the model hook
func (r *ProjectRepo) CreateProject(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// UpdateProject applies the set fields of patch and returns the refreshed
// row, or nil when no project has that id.
func (r *ProjectRepo) UpdateProject(ctx context.Context, id uuid.UUID, patch models.ProjectPatch) (*models.Project, error) {
	var updated *models.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := firstOrNil[models.Project](tx, "id = ?", id)
		if err != nil || existing == nil {
			return err
		}

		cols := patch.Columns()
		now := time.Now()
		cols["updated_at"] = now
		if patch.Publishes() && existing.PublishedAt == nil {
			cols["published_at"] = now
		}
		if err := tx.Model(&models.Project{}).Where("id = ?", id).Updates(cols).Error; err != nil {
			return err
		}

		updated, err = firstOrNil[models.Project](tx, "id = ?", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProject reports whether a row was removed
func (r *ProjectRepo) DeleteProject(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	return res.RowsAffected > 0, res.Error
}

// IncrementProjectViews bumps the counter in a single UPDATE so concurrent
// readers never lose an increment.
func (r *ProjectRepo) IncrementProjectViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

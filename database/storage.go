package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/electronics-site-backend/models"
)

const (
	DefaultLimit  = 50
	DefaultOffset = 0
)

// Page selects a window of a newest-first listing. Zero values mean the defaults.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}
	return p
}

// Analytics is the dashboard summary.
type Analytics struct {
	TotalPosts    int64 `json:"totalPosts"`
	TotalProjects int64 `json:"totalProjects"`
	TotalViews    int64 `json:"totalViews"`
	TotalContacts int64 `json:"totalContacts"`
}

// Storage is the data-access contract used by the HTTP layer. Lookups return
// (nil, nil) when the row does not exist. Delete and status updates report
// whether a row was affected.
type Storage interface {
	Ping(ctx context.Context) error

	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error

	GetBlogPosts(ctx context.Context, page Page) ([]models.BlogPost, error)
	GetPublishedBlogPosts(ctx context.Context, page Page) ([]models.BlogPost, error)
	GetBlogPost(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreateBlogPost(ctx context.Context, post *models.BlogPost) error
	UpdateBlogPost(ctx context.Context, id uuid.UUID, patch models.BlogPostPatch) (*models.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementBlogPostViews(ctx context.Context, id uuid.UUID) error

	GetProjects(ctx context.Context, page Page) ([]models.Project, error)
	GetPublishedProjects(ctx context.Context, page Page) ([]models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) error
	UpdateProject(ctx context.Context, id uuid.UUID, patch models.ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementProjectViews(ctx context.Context, id uuid.UUID) error

	GetContacts(ctx context.Context, page Page) ([]models.Contact, error)
	CreateContact(ctx context.Context, contact *models.Contact) error
	UpdateContactStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)

	AddToNewsletter(ctx context.Context, email string) (*models.Newsletter, error)
	GetNewsletterSubscribers(ctx context.Context) ([]models.Newsletter, error)

	GetMedia(ctx context.Context, page Page) ([]models.Media, error)
	GetMediaItem(ctx context.Context, id uuid.UUID) (*models.Media, error)
	UploadMedia(ctx context.Context, media *models.Media) error
	DeleteMedia(ctx context.Context, id uuid.UUID) (bool, error)

	GetAnalytics(ctx context.Context) (*Analytics, error)
}

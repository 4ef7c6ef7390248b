package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/electronics-site-backend/database/dbtest"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	return New(dbtest.Open(t))
}

func strPtr(s string) *string { return &s }

func TestUsers(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	missing, err := d.GetUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	user := &models.User{Username: "admin", Password: "hash", Email: "admin@example.com", Name: "Admin"}
	require.NoError(t, d.CreateUser(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)

	got, err := d.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Username)

	byEmail, err := d.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	dup := &models.User{Username: "admin", Password: "x", Email: "other@example.com", Name: "Other"}
	err = d.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	require.NoError(t, d.CreateCategory(ctx, &models.Category{Name: "Robotics"}))
	require.NoError(t, d.CreateCategory(ctx, &models.Category{Name: "Audio Circuits"}))

	all, err := d.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Audio Circuits", all[0].Name)
	assert.Equal(t, models.DefaultCategoryColor, all[0].Color)

	got, err := d.GetCategoryBySlug(ctx, "audio-circuits")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Audio Circuits", got.Name)

	none, err := d.GetCategoryBySlug(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestBlogPostDefaultsAndLookup(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	post := &models.BlogPost{Title: "Building a Tube Amp", Content: "warm glow"}
	require.NoError(t, d.CreateBlogPost(ctx, post))
	assert.Equal(t, "building-a-tube-amp", post.Slug)
	assert.Equal(t, models.StatusDraft, post.Status)
	assert.Zero(t, post.Views)
	assert.Nil(t, post.PublishedAt)

	bySlug, err := d.GetBlogPostBySlug(ctx, "building-a-tube-amp")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, post.ID, bySlug.ID)

	absent, err := d.GetBlogPost(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, absent)

	err = d.CreateBlogPost(ctx, &models.BlogPost{Title: "Other", Slug: "building-a-tube-amp", Content: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestPublishedListingFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, status := range []string{models.StatusPublished, models.StatusDraft, models.StatusPublished, models.StatusPublished} {
		require.NoError(t, d.CreateBlogPost(ctx, &models.BlogPost{
			Title:     "Post " + string(rune('A'+i)),
			Content:   "body",
			Status:    status,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	published, err := d.GetPublishedBlogPosts(ctx, Page{})
	require.NoError(t, err)
	require.Len(t, published, 3)
	for i, p := range published {
		assert.Equal(t, models.StatusPublished, p.Status)
		assert.NotNil(t, p.PublishedAt)
		if i > 0 {
			assert.False(t, p.CreatedAt.After(published[i-1].CreatedAt))
		}
	}
	assert.Equal(t, "Post D", published[0].Title)

	all, err := d.GetBlogPosts(ctx, Page{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Post C", all[0].Title)
	assert.Equal(t, "Post B", all[1].Title)
}

func TestUpdateBlogPost(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	post := &models.BlogPost{Title: "Draft", Content: "body", Excerpt: strPtr("keep me")}
	require.NoError(t, d.CreateBlogPost(ctx, post))

	missing, err := d.UpdateBlogPost(ctx, uuid.New(), models.BlogPostPatch{Title: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, missing)

	time.Sleep(5 * time.Millisecond)
	updated, err := d.UpdateBlogPost(ctx, post.ID, models.BlogPostPatch{
		Title:  strPtr("Final"),
		Status: strPtr(models.StatusPublished),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, models.StatusPublished, updated.Status)
	require.NotNil(t, updated.Excerpt)
	assert.Equal(t, "keep me", *updated.Excerpt)
	assert.Equal(t, "draft", updated.Slug)
	assert.True(t, updated.UpdatedAt.After(post.UpdatedAt))
	require.NotNil(t, updated.PublishedAt)
	firstPublished := *updated.PublishedAt

	again, err := d.UpdateBlogPost(ctx, post.ID, models.BlogPostPatch{Status: strPtr(models.StatusPublished)})
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.True(t, firstPublished.Equal(*again.PublishedAt))
}

func TestDeleteBlogPost(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	post := &models.BlogPost{Title: "Gone", Content: "body"}
	require.NoError(t, d.CreateBlogPost(ctx, post))

	deleted, err := d.DeleteBlogPost(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = d.DeleteBlogPost(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestIncrementViewsIsAtomic(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	post := &models.BlogPost{Title: "Popular", Content: "body"}
	require.NoError(t, d.CreateBlogPost(ctx, post))
	project := &models.Project{Title: "Popular Build", Description: "d", Content: "body"}
	require.NoError(t, d.CreateProject(ctx, project))

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.IncrementBlogPostViews(ctx, post.ID))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, d.IncrementProjectViews(ctx, project.ID))
		}()
	}
	wg.Wait()

	got, err := d.GetBlogPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got.Views)

	gotProject, err := d.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, n, gotProject.Views)
}

func TestIncrementViewsIsSingleUpdate(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	d := New(db)

	post := &models.BlogPost{Title: "Counted", Content: "body"}
	require.NoError(t, d.CreateBlogPost(ctx, post))
	project := &models.Project{Title: "Counted Build", Description: "d", Content: "body"}
	require.NoError(t, d.CreateProject(ctx, project))

	var updates, queries []string
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:record_update", func(tx *gorm.DB) {
		updates = append(updates, tx.Statement.SQL.String())
	}))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", func(tx *gorm.DB) {
		queries = append(queries, tx.Statement.SQL.String())
	}))

	require.NoError(t, d.IncrementBlogPostViews(ctx, post.ID))
	require.NoError(t, d.IncrementProjectViews(ctx, project.ID))

	assert.Empty(t, queries)
	require.Len(t, updates, 2)
	assert.Contains(t, updates[0], "UPDATE `blog_posts` SET `views`=views + ?")
	assert.Contains(t, updates[1], "UPDATE `projects` SET `views`=views + ?")
}

func TestProjects(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	project := &models.Project{
		Title:       "LED Cube",
		Description: "8x8x8",
		Content:     "solder",
		Components:  []string{"LED", "74HC595"},
	}
	require.NoError(t, d.CreateProject(ctx, project))
	assert.Equal(t, models.DifficultyBeginner, project.Difficulty)
	assert.Equal(t, "led-cube", project.Slug)

	bySlug, err := d.GetProjectBySlug(ctx, "led-cube")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, []string{"LED", "74HC595"}, []string(bySlug.Components))

	published, err := d.GetPublishedProjects(ctx, Page{})
	require.NoError(t, err)
	assert.Empty(t, published)

	updated, err := d.UpdateProject(ctx, project.ID, models.ProjectPatch{Status: strPtr(models.StatusPublished)})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.NotNil(t, updated.PublishedAt)

	published, err = d.GetPublishedProjects(ctx, Page{})
	require.NoError(t, err)
	assert.Len(t, published, 1)

	deleted, err := d.DeleteProject(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestContacts(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	contact := &models.Contact{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Subject: "Hi", Message: "Hello there"}
	require.NoError(t, d.CreateContact(ctx, contact))
	assert.Equal(t, models.ContactStatusNew, contact.Status)

	found, err := d.UpdateContactStatus(ctx, contact.ID, models.ContactStatusRead)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = d.UpdateContactStatus(ctx, uuid.New(), models.ContactStatusRead)
	require.NoError(t, err)
	assert.False(t, found)

	all, err := d.GetContacts(ctx, Page{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.ContactStatusRead, all[0].Status)
}

func TestAddToNewsletterIsIdempotent(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	first, err := d.AddToNewsletter(ctx, "reader@example.com")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, models.NewsletterStatusActive, first.Status)

	second, err := d.AddToNewsletter(ctx, "  Reader@Example.com ")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)

	subs, err := d.GetNewsletterSubscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestMedia(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	item := &models.Media{Filename: "a/b.png", OriginalName: "b.png", MimeType: "image/png", Size: 42, URL: "/media/a/b.png"}
	require.NoError(t, d.UploadMedia(ctx, item))

	got, err := d.GetMediaItem(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.Size)

	list, err := d.GetMedia(ctx, Page{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := d.DeleteMedia(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestGetAnalytics(t *testing.T) {
	ctx := context.Background()
	d := newTestDatabase(t)

	empty, err := d.GetAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, Analytics{}, *empty)

	post := &models.BlogPost{Title: "One", Content: "x"}
	require.NoError(t, d.CreateBlogPost(ctx, post))
	require.NoError(t, d.CreateBlogPost(ctx, &models.BlogPost{Title: "Two", Content: "x"}))
	project := &models.Project{Title: "Build", Description: "d", Content: "x"}
	require.NoError(t, d.CreateProject(ctx, project))
	require.NoError(t, d.CreateContact(ctx, &models.Contact{FirstName: "A", LastName: "B", Email: "a@b.co", Subject: "s", Message: "hello world"}))

	for i := 0; i < 3; i++ {
		require.NoError(t, d.IncrementBlogPostViews(ctx, post.ID))
	}
	require.NoError(t, d.IncrementProjectViews(ctx, project.ID))

	stats, err := d.GetAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, Analytics{TotalPosts: 2, TotalProjects: 1, TotalViews: 4, TotalContacts: 1}, *stats)
}

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, Page{Limit: DefaultLimit, Offset: 0}, Page{}.normalize())
	assert.Equal(t, Page{Limit: 5, Offset: 0}, Page{Limit: 5, Offset: -3}.normalize())
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/electronics-site-backend/database"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   database.Storage
}

func newBlogPostHandler(storage database.Storage) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// getPublishedBlogPosts lists published posts, newest first
// @Summary List published blog posts
// @Tags Blog Posts
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} models.BlogPost
// @Failure 500 {object} ErrorResponse "Failed to fetch blog posts"
// @Router /blog/posts [get]
func (h blogPostHandler) getPublishedBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.storage.GetPublishedBlogPosts(r.Context(), pageFromQuery(r, publicPageSize))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "blog posts", err))
			return
		}
		h.responder.WriteJSON(w, posts)
	}
}

// getBlogPostBySlug returns one post and counts the view
// @Summary Get blog post by slug
// @Tags Blog Posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} ErrorResponse "Blog post not found"
// @Router /blog/posts/{slug} [get]
func (h blogPostHandler) getBlogPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		post, err := h.storage.GetBlogPostBySlug(r.Context(), slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}

		if err := h.storage.IncrementBlogPostViews(r.Context(), post.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// getAllBlogPosts lists posts of every status for the dashboard
// @Summary List all blog posts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} models.BlogPost
// @Router /admin/posts [get]
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.storage.GetBlogPosts(r.Context(), pageFromQuery(r, adminPageSize))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "posts", err))
			return
		}
		h.responder.WriteJSON(w, posts)
	}
}

func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.storage.GetBlogPost(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}
		h.responder.WriteJSON(w, post)
	}
}

// createBlogPost creates a post authored by the caller
// @Summary Create blog post
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BlogPostRequest true "Post"
// @Success 201 {object} models.BlogPost
// @Failure 400 {object} ErrorResponse "Invalid blog post data"
// @Failure 409 {object} ErrorResponse "Blog post already exists"
// @Router /admin/posts [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BlogPostRequest
		if err := decodeJSON(w, r, "blog post", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateStruct("Invalid blog post data", req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := checkSlug(req.Slug, req.Title); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post := req.toModel()
		post.AuthorID = authorID(r)
		if err := h.storage.CreateBlogPost(r.Context(), &post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "Blog post", err))
			return
		}

		h.logger.Info().Str("postID", post.ID.String()).Str("slug", post.Slug).Msg("Blog post created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, post)
	}
}

func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.BlogPostPatch
		if err := decodeJSON(w, r, "blog post", &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateStruct("Invalid blog post data", patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.storage.UpdateBlogPost(r.Context(), id, patch)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "Blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}
		h.responder.WriteJSON(w, post)
	}
}

func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.storage.DeleteBlogPost(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog post", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}

		h.logger.Info().Str("postID", id.String()).Msg("Blog post deleted")
		h.responder.WriteJSON(w, MessageResponse{Message: "Blog post deleted"})
	}
}

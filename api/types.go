package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/electronics-site-backend/auth"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rpupo63/electronics-site-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler       authHandler
	blogPostHandler   blogPostHandler
	projectHandler    projectHandler
	contactHandler    contactHandler
	newsletterHandler newsletterHandler
	categoryHandler   categoryHandler
	adminHandler      adminHandler
	mediaHandler      mediaHandler
	healthHandler     healthHandler
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string            `json:"message" example:"Invalid form data"`
	Errors  []errs.FieldError `json:"errors,omitempty"`
}

// MessageResponse acknowledges a write that has no other payload.
type MessageResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is a user without the password hash.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
}

func newPublicUser(u *models.User) PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email, Name: u.Name, Role: u.Role}
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type VerifyResponse struct {
	Valid bool          `json:"valid"`
	User  auth.Identity `json:"user"`
}

type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Subject   string `json:"subject" validate:"required,max=200"`
	Message   string `json:"message" validate:"required,max=5000"`
}

type ContactCreatedResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

type ContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied"`
}

type NewsletterRequest struct {
	Email string `json:"email"`
}

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Slug        string  `json:"slug" validate:"omitempty,slug"`
	Description *string `json:"description"`
	Color       string  `json:"color" validate:"omitempty,hexcolor"`
}

type BlogPostRequest struct {
	Title          string     `json:"title" validate:"required,max=300"`
	Slug           string     `json:"slug" validate:"omitempty,slug"`
	Content        string     `json:"content" validate:"required"`
	Excerpt        *string    `json:"excerpt"`
	FeaturedImage  *string    `json:"featuredImage"`
	CategoryID     *uuid.UUID `json:"categoryId"`
	Status         string     `json:"status" validate:"omitempty,oneof=draft published"`
	ReadTime       int        `json:"readTime" validate:"omitempty,min=1"`
	Tags           []string   `json:"tags"`
	SeoTitle       *string    `json:"seoTitle"`
	SeoDescription *string    `json:"seoDescription"`
	PublishedAt    *time.Time `json:"publishedAt"`
}

func (req BlogPostRequest) toModel() models.BlogPost {
	return models.BlogPost{
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		FeaturedImage:  req.FeaturedImage,
		CategoryID:     req.CategoryID,
		Status:         req.Status,
		ReadTime:       req.ReadTime,
		Tags:           req.Tags,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
		PublishedAt:    req.PublishedAt,
	}
}

type ProjectRequest struct {
	Title          string     `json:"title" validate:"required,max=300"`
	Slug           string     `json:"slug" validate:"omitempty,slug"`
	Description    string     `json:"description" validate:"required"`
	Content        string     `json:"content" validate:"required"`
	FeaturedImage  *string    `json:"featuredImage"`
	CategoryID     *uuid.UUID `json:"categoryId"`
	Difficulty     string     `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Status         string     `json:"status" validate:"omitempty,oneof=draft published"`
	EstimatedTime  *string    `json:"estimatedTime"`
	Components     []string   `json:"components"`
	Tools          []string   `json:"tools"`
	Tags           []string   `json:"tags"`
	GithubURL      *string    `json:"githubUrl" validate:"omitempty,url"`
	DemoURL        *string    `json:"demoUrl" validate:"omitempty,url"`
	SeoTitle       *string    `json:"seoTitle"`
	SeoDescription *string    `json:"seoDescription"`
	PublishedAt    *time.Time `json:"publishedAt"`
}

func (req ProjectRequest) toModel() models.Project {
	return models.Project{
		Title:          req.Title,
		Slug:           req.Slug,
		Description:    req.Description,
		Content:        req.Content,
		FeaturedImage:  req.FeaturedImage,
		CategoryID:     req.CategoryID,
		Difficulty:     req.Difficulty,
		Status:         req.Status,
		EstimatedTime:  req.EstimatedTime,
		Components:     req.Components,
		Tools:          req.Tools,
		Tags:           req.Tags,
		GithubURL:      req.GithubURL,
		DemoURL:        req.DemoURL,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
		PublishedAt:    req.PublishedAt,
	}
}

type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime,omitempty"`
}

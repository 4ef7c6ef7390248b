package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes registers the routes the public site calls without a credential
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/health", handlers.healthHandler.health())

	r.Post("/auth/login", handlers.authHandler.login())

	r.Get("/blog/posts", handlers.blogPostHandler.getPublishedBlogPosts())
	r.Get("/blog/posts/{slug}", handlers.blogPostHandler.getBlogPostBySlug())

	r.Get("/projects", handlers.projectHandler.getPublishedProjects())
	r.Get("/projects/{slug}", handlers.projectHandler.getProjectBySlug())

	r.Post("/contact", handlers.contactHandler.createContact())
	r.Post("/newsletter", handlers.newsletterHandler.subscribe())
	r.Get("/categories", handlers.categoryHandler.getCategories())
}

// setupAdminRoutes registers the routes that require a bearer credential
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Post("/auth/verify", handlers.authHandler.verify())

		r.Route("/admin", func(r chi.Router) {
			r.Get("/analytics", handlers.adminHandler.getAnalytics())

			r.Get("/posts", handlers.blogPostHandler.getAllBlogPosts())
			r.Post("/posts", handlers.blogPostHandler.createBlogPost())
			r.Get("/posts/{id}", handlers.blogPostHandler.getBlogPost())
			r.Patch("/posts/{id}", handlers.blogPostHandler.updateBlogPost())
			r.Delete("/posts/{id}", handlers.blogPostHandler.deleteBlogPost())

			r.Get("/projects", handlers.projectHandler.getAllProjects())
			r.Post("/projects", handlers.projectHandler.createProject())
			r.Get("/projects/{id}", handlers.projectHandler.getProject())
			r.Patch("/projects/{id}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{id}", handlers.projectHandler.deleteProject())

			r.Get("/contacts", handlers.adminHandler.getContacts())
			r.Patch("/contacts/{id}/status", handlers.adminHandler.updateContactStatus())

			r.Post("/categories", handlers.categoryHandler.createCategory())
			r.Get("/newsletter", handlers.newsletterHandler.getSubscribers())

			r.Get("/media", handlers.mediaHandler.getMedia())
			r.Post("/media", handlers.mediaHandler.uploadMedia())
			r.Delete("/media/{id}", handlers.mediaHandler.deleteMedia())
		})
	})
}

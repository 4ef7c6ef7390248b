package api

import (
	"time"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, maxUpload int64, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		authHandler:       newAuthHandler(deps.Gate),
		blogPostHandler:   newBlogPostHandler(deps.Storage),
		projectHandler:    newProjectHandler(deps.Storage),
		contactHandler:    newContactHandler(deps.Storage, deps.Notifier),
		newsletterHandler: newNewsletterHandler(deps.Storage),
		categoryHandler:   newCategoryHandler(deps.Storage),
		adminHandler:      newAdminHandler(deps.Storage),
		mediaHandler:      newMediaHandler(deps.Storage, deps.Blobs, maxUpload),
		healthHandler:     newHealthHandler(deps.Storage, startupTime),
	}
}

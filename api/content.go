package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rpupo63/electronics-site-backend/models"
)

// idParam parses the {id} path parameter.
func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errs.NewInvalidFieldError("id", "must be a UUID")
	}
	return id, nil
}

// checkSlug rejects a title that yields no usable slug when none was given.
func checkSlug(slug, title string) error {
	if slug == "" && models.Slugify(title) == "" {
		return errs.NewInvalidFieldError("slug", "could not be derived from the title; provide one explicitly")
	}
	return nil
}

func authorID(r *http.Request) *uuid.UUID {
	if id := ctxGetIdentity(r.Context()); id != nil && id.UserID != uuid.Nil {
		userID := id.UserID
		return &userID
	}
	return nil
}

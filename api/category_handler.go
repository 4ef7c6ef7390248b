package api

import (
	"net/http"

	"github.com/rpupo63/electronics-site-backend/database"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type categoryHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   database.Storage
}

func newCategoryHandler(storage database.Storage) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// getCategories lists every category by name
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (h categoryHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.storage.GetCategories(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "categories", err))
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CategoryRequest
		if err := decodeJSON(w, r, "category", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateStruct("Invalid category data", req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := checkSlug(req.Slug, req.Name); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category := models.Category{
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
			Color:       req.Color,
		}
		if err := h.storage.CreateCategory(r.Context(), &category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "Category", err))
			return
		}

		h.logger.Info().Str("categoryID", category.ID.String()).Msg("Category created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, category)
	}
}

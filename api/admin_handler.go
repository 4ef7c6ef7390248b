package api

import (
	"net/http"

	"github.com/rpupo63/electronics-site-backend/database"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// adminHandler serves the dashboard views that are not tied to one content type.
type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   database.Storage
}

func newAdminHandler(storage database.Storage) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// getAnalytics returns the dashboard counters
// @Summary Dashboard analytics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} database.Analytics
// @Failure 500 {object} ErrorResponse "Failed to fetch analytics"
// @Router /admin/analytics [get]
func (h adminHandler) getAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analytics, err := h.storage.GetAnalytics(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "analytics", err))
			return
		}
		h.responder.WriteJSON(w, analytics)
	}
}

func (h adminHandler) getContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.storage.GetContacts(r.Context(), pageFromQuery(r, adminPageSize))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "contacts", err))
			return
		}
		h.responder.WriteJSON(w, contacts)
	}
}

func (h adminHandler) updateContactStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req ContactStatusRequest
		if err := decodeJSON(w, r, "contact status", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateStruct("Invalid contact status", req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		found, err := h.storage.UpdateContactStatus(r.Context(), id, req.Status)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact", err))
			return
		}
		if !found {
			h.responder.WriteError(w, errs.NewNotFoundError("Contact not found"))
			return
		}
		h.responder.WriteJSON(w, MessageResponse{Message: "Contact status updated"})
	}
}
